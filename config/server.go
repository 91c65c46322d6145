package config

import "os"

type ServerConfig struct {
	Port    string
	JwksUrl string
}

// GetServerConfig never fails: the port defaults and auth is opt-in, engaged
// only when JWKS_URL is set.
func GetServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &ServerConfig{
		Port:    port,
		JwksUrl: os.Getenv("JWKS_URL"),
	}
}
