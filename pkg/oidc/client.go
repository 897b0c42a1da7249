package oidc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Config holds the static configuration of the pre-configured provider.
// Endpoints are fixed; there is no dynamic discovery.
type Config struct {
	// ClientID of the relying party, as registered with the provider.
	ClientID string
	// ClientSecret is shared with the provider and doubles as the HMAC key
	// for ID token signatures.
	ClientSecret string
	// ProviderBaseURL is the base under which the provider exposes the
	// authorize, token, userinfo and logout endpoints.
	ProviderBaseURL string
	// Scopes to request, in order. Joined with spaces on the wire.
	Scopes []string
	// CallbackURL is the pre-resolved redirect_uri of this relying party.
	CallbackURL string
	// PostLogoutRedirectURL is where the provider sends the user after logout.
	PostLogoutRedirectURL string
}

// Client implements the protocol legs of the authorization code flow against
// one provider: building the authorization URL, verifying the callback state,
// exchanging the code for tokens, fetching userinfo and building the logout
// URL.
type Client struct {
	config    Config
	transport Transport

	authorizeURL string
	tokenURL     string
	userInfoURL  string
	logoutURL    string
}

// tokenEndpointResponse is the body schema of a successful token endpoint
// response. Fields the flow does not use are ignored.
type tokenEndpointResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
}

// providerErrorBody is the body schema of a provider error response.
type providerErrorBody struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

// NewClient creates a Client for the given provider configuration and
// transport.
func NewClient(config Config, transport Transport) *Client {
	base := strings.TrimSuffix(config.ProviderBaseURL, "/")

	return &Client{
		config:       config,
		transport:    transport,
		authorizeURL: base + "/authorize",
		tokenURL:     base + "/token",
		userInfoURL:  base + "/userinfo?schema=openid",
		logoutURL:    base + "/logout",
	}
}

// AuthorizationURL generates fresh state and nonce tokens, persists them in
// the given session store and returns the provider's authorization URL.
//
// The store writes happen before the URL is returned, so the values are in
// place by the time the browser is redirected. The state travels to the
// provider wrapped as token={<value>}; it round-trips unmodified and
// VerifyState unwraps it on the way back.
func (c *Client) AuthorizationURL(store Store) (string, error) {
	// Two independent, cryptographically random tokens. Never reused across
	// login attempts.
	state, nonce := uuid.NewString(), uuid.NewString()

	if err := store.Set(KeyState, state); err != nil {
		return "", &StorageError{Op: "set state", Err: err}
	}
	if err := store.Set(KeyNonce, nonce); err != nil {
		return "", &StorageError{Op: "set nonce", Err: err}
	}

	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.config.ClientID)
	q.Set("scope", strings.Join(c.config.Scopes, " "))
	q.Set("redirect_uri", c.config.CallbackURL)
	q.Set("nonce", nonce)
	q.Set("state", "token={"+state+"}")

	return c.authorizeURL + "?" + q.Encode(), nil
}

// VerifyState checks the state parameter echoed by the provider against the
// value stored when the authorization URL was generated. It is the CSRF gate
// for the whole flow and must pass before any token exchange happens.
//
// The raw parameter is parsed as form-encoded data to recover the "token"
// field, and exactly one leading "{" and one trailing "}" are stripped.
// Providers that do not echo the wrapper literally are tolerated; the
// wrapper's presence is not required.
func (c *Client) VerifyState(ctx context.Context, store Store, rawState string) error {
	params, err := url.ParseQuery(rawState)
	if err != nil {
		slog.ErrorContext(ctx, "state parameter is not form-encoded", "error", err)
		return &SecurityError{reason: "state mismatch"}
	}

	received := params.Get("token")
	received = strings.TrimPrefix(received, "{")
	received = strings.TrimSuffix(received, "}")

	stored, found := store.Get(KeyState)
	if !found || stored == "" || received != stored {
		slog.ErrorContext(ctx, "state parameter does not match stored state")
		return &SecurityError{reason: "state mismatch"}
	}

	return nil
}

// ExchangeCode exchanges the authorization code for tokens and validates the
// returned ID token before trusting any of its claims: the nonce claim must
// equal the session's stored nonce, and the HMAC signature must verify
// against the client secret. Both checks are mandatory; either failure
// rejects the token wholesale.
//
// On success the stored nonce is removed (it is single-use) and the access
// token is returned together with the decoded ID token claims. A failed
// exchange is never retried; authorization codes are single-use.
func (c *Client) ExchangeCode(ctx context.Context, store Store, code string) (string, map[string]any, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.config.CallbackURL)
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)
	form.Set("code", code)

	res, err := c.transport.PostForm(ctx, c.tokenURL, form)
	if err != nil {
		return "", nil, err
	}

	if res.Status != http.StatusOK {
		// Raw body goes to the logs only.
		slog.ErrorContext(ctx, "token endpoint returned non-200", "status", res.Status, "body", string(res.Body))
		return "", nil, providerErrorFromBody(res)
	}

	var token tokenEndpointResponse
	if err := json.Unmarshal(res.Body, &token); err != nil {
		return "", nil, fmt.Errorf("failed to decode token endpoint response: %w", err)
	}

	// Retain the raw ID token for the provider's logout endpoint.
	if err := store.Set(KeyIDTokenHint, token.IDToken); err != nil {
		return "", nil, &StorageError{Op: "set id token hint", Err: err}
	}

	claims, err := decodeClaims(token.IDToken)
	if err != nil {
		slog.ErrorContext(ctx, "ID token payload could not be decoded", "error", err)
		return "", nil, &SecurityError{reason: "invalid signature"}
	}

	// Nonce first: cheap, and catches replays and cross-session confusion
	// before any cryptography runs.
	nonce, _ := claims["nonce"].(string)
	stored, found := store.Get(KeyNonce)
	if !found || stored == "" || nonce != stored {
		slog.ErrorContext(ctx, "ID token nonce does not match stored nonce")
		return "", nil, &SecurityError{reason: "nonce mismatch"}
	}

	if !verifySignature(token.IDToken, []byte(c.config.ClientSecret)) {
		slog.ErrorContext(ctx, "ID token signature verification failed")
		return "", nil, &SecurityError{reason: "invalid signature"}
	}

	// The nonce is single-use. Remove it now that the token has validated.
	if err := store.Remove(KeyNonce); err != nil {
		return "", nil, &StorageError{Op: "remove nonce", Err: err}
	}

	return token.AccessToken, claims, nil
}

// UserInfo fetches the profile associated with the given access token from
// the provider's userinfo endpoint. The decoded body is returned unchanged.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (map[string]any, error) {
	headers := map[string]string{"Authorization": "Bearer " + accessToken}

	res, err := c.transport.Get(ctx, c.userInfoURL, headers)
	if err != nil {
		return nil, err
	}

	if res.Status != http.StatusOK {
		slog.ErrorContext(ctx, "userinfo endpoint returned non-200", "status", res.Status, "body", string(res.Body))
		return nil, providerErrorFromBody(res)
	}

	var info map[string]any
	if err := json.Unmarshal(res.Body, &info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	return info, nil
}

// LogoutURL builds the provider's logout URL from the configured post-logout
// redirect and the ID token hint stored during the exchange. Clearing the
// session is the caller's responsibility.
func (c *Client) LogoutURL(store Store) string {
	q := url.Values{}
	q.Set("post_logout_redirect_uri", c.config.PostLogoutRedirectURL)
	if hint, found := store.Get(KeyIDTokenHint); found {
		q.Set("id_token_hint", hint)
	}

	return c.logoutURL + "?" + q.Encode()
}

// providerErrorFromBody decodes the provider's error/error_description pair
// from a non-success response body.
func providerErrorFromBody(res Response) *ProviderError {
	var body providerErrorBody
	// A body that fails to decode still yields a usable ProviderError.
	_ = json.Unmarshal(res.Body, &body)
	if body.Code == "" {
		body.Code = fmt.Sprintf("http_%d", res.Status)
	}

	return &ProviderError{Status: res.Status, Code: body.Code, Description: body.Description}
}
