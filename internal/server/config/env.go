package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is an intermediate DTO for environment parsing. The token
// validity is a duration string such as "1h" or "30m". Empty values are
// left untouched in the target Config so earlier layers survive.
type envConfig struct {
	EndpointAddr          string `env:"ADDRESS"`
	DatabaseDSN           string `env:"DATABASE_DSN"`
	SecretKey             string `env:"JWT_SECRET"`
	TokenValidityDuration string `env:"TOKEN_VALIDITY"`
}

// parseEnv overlays configuration values from environment variables.
// A malformed TOKEN_VALIDITY panics, like a malformed config file would.
func parseEnv(config *Config) {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	if e.EndpointAddr != "" {
		config.EndpointAddr = e.EndpointAddr
	}
	if e.DatabaseDSN != "" {
		config.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.TokenValidityDuration != "" {
		d, err := time.ParseDuration(e.TokenValidityDuration)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}
}
