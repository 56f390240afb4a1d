package config

import "os"

// Config holds server settings read from the environment.
type Config struct {
	Port      string
	RedisAddr string // optional; empty means the in-memory audit sequence
}

// Load reads server configuration from the environment.
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
