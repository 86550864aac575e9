package server

import "github.com/joeshaw/envdecode"

// Config is the server configuration, read from the environment
type Config struct {
	Addr          string `env:"FRONTIER_ADDR,default=:8000"`
	AllowedOrigin string `env:"FRONTIER_ALLOWED_ORIGIN,default=*"`
}

// ConfigFromEnv decodes a Config from the process environment
func ConfigFromEnv() (Config, error) {
	var cfg Config
	err := envdecode.Decode(&cfg)
	return cfg, err
}
