// Package config loads service configuration with Viper.
//
// LoadConfig looks for a config.yml and a .env file in the usual places
// (./cmd/<service>/, ./config/, the working directory and its parents),
// reads the YAML first, then overlays environment variables. An environment
// variable is bound under every nested key it could spell, so
// CLIENT_ENVIRONMENT sets client.environment and CLIENT_BASE_URL sets
// client.base_url.
//
//	var cfg struct {
//	    config.ServiceConfig `mapstructure:",squash"`
//	    Client client.Config `mapstructure:"client"`
//	}
//	err := config.LoadConfig("restcall", &cfg)
package config
