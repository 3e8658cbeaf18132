package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings for the server mode.
type Config struct {
	ListenAddr string
	StaticDir  string
}

// Load reads configuration from the environment, picking up a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		ListenAddr: ":" + port,
		StaticDir:  os.Getenv("STATIC_DIR"),
	}
}
