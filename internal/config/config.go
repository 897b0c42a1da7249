package config

// Config represents the configs model.
type Config struct {
	// Application is the model of application configs.
	Application struct {
		// Name of the application.
		Name string `yaml:"name"`
		// BaseURL of the application.
		// It can be http://localhost:8080 during development and https://domain.com in production.
		BaseURL string `yaml:"base_url"`
	} `yaml:"application"`

	Database struct {
		Addr     string `yaml:"addr"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
	} `yaml:"database"`

	// HTTPServer is the model of the HTTP Server configs.
	HTTPServer struct {
		// Addr is the address of the HTTP server.
		Addr string `yaml:"addr"`
	} `yaml:"http_server"`

	// Logger is the model of the application logger configs.
	Logger struct {
		// Level of the logger.
		Level string `yaml:"level"`
		// Pretty is a flag that dictates whether the log output should be pretty (human-readable).
		Pretty bool `yaml:"pretty"`
	} `yaml:"logger"`

	// OIDC holds the provider and relying-party configs.
	OIDC struct {
		// ClientID of this relying party, as registered with the provider.
		ClientID string `yaml:"client_id"`
		// ClientSecret shared with the provider. Also the HMAC key for ID token signatures.
		ClientSecret string `yaml:"client_secret"`
		// ProviderBaseURL under which the provider exposes its fixed endpoints.
		ProviderBaseURL string `yaml:"provider_base_url"`
		// Scopes to request, in order.
		Scopes []string `yaml:"scopes"`
		// CallbackURL is the pre-resolved callback endpoint of this service.
		CallbackURL string `yaml:"callback_url"`
		// PostLogoutRedirectURL is where the provider sends the user after logout.
		PostLogoutRedirectURL string `yaml:"post_logout_redirect_url"`
		// ProxyHost is the optional HTTP proxy host. Empty disables proxying.
		ProxyHost string `yaml:"proxy_host"`
		// ProxyPort is the port of the HTTP proxy.
		ProxyPort int `yaml:"proxy_port"`
		// DefaultRoles are attached to every authenticated identity.
		DefaultRoles []string `yaml:"default_roles"`
	} `yaml:"oidc"`
}

// Load loads and returns the config value.
func Load() Config {
	return loadWithViper()
}

// LoadMock provides a mock instance of the config for testing purposes.
func LoadMock() Config {
	cfg := Config{}

	cfg.Application.Name = "example-application"
	cfg.Application.BaseURL = "http://localhost:8080"
	cfg.HTTPServer.Addr = "localhost:8080"

	cfg.Logger.Level = "debug"
	cfg.Logger.Pretty = true

	cfg.OIDC.ClientID = "example-client"
	cfg.OIDC.ClientSecret = "example-secret"
	cfg.OIDC.ProviderBaseURL = "https://provider.example.com/oidc"
	cfg.OIDC.Scopes = []string{"openid", "profile", "email"}
	cfg.OIDC.CallbackURL = "http://localhost:8080/api/oidc/callback"
	cfg.OIDC.PostLogoutRedirectURL = "http://localhost:8080/"
	cfg.OIDC.DefaultRoles = []string{"ROLE_OIDC_USER"}

	return cfg
}
