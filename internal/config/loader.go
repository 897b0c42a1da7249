package config

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// loadWithViper reads the config file with viper and unmarshals it into the
// Config struct. It panics upon error because the application cannot run
// without configs.
func loadWithViper() Config {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	// Allow env overrides, example: OIDCONNECT_HTTP_SERVER_ADDR.
	v.SetEnvPrefix("oidconnect")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		panic("error in ReadInConfig call: " + err.Error())
	}

	var cfg Config
	// The struct is tagged with yaml, not mapstructure.
	decodeWithYamlTag := func(dc *mapstructure.DecoderConfig) { dc.TagName = "yaml" }
	if err := v.Unmarshal(&cfg, decodeWithYamlTag); err != nil {
		panic("error in viper.Unmarshal call: " + err.Error())
	}

	return cfg
}
