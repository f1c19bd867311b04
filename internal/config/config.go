package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// LocalBackendURL is the backend origin used during local development.
	LocalBackendURL = "http://127.0.0.1:8000"
	// DeployedBackendURL is the fixed deployed origin everything else maps to.
	DeployedBackendURL = "https://full-stack-my-study-life.onrender.com"
)

type Config struct {
	// BaseURL is the backend origin all API calls go to.
	BaseURL string
	// TokenPath is where the session token is persisted.
	TokenPath string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	baseURL := os.Getenv("STUDYLIFE_API_URL")
	if baseURL == "" {
		baseURL = ResolveBaseURL(os.Getenv("STUDYLIFE_HOST"))
	}

	tokenPath := os.Getenv("STUDYLIFE_TOKEN_FILE")
	if tokenPath == "" {
		tokenPath = defaultTokenPath()
	}

	return &Config{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		TokenPath: tokenPath,
	}
}

// ResolveBaseURL picks the backend origin for a host: loopback hosts get
// the local development backend, everything else the deployed origin.
func ResolveBaseURL(host string) string {
	switch host {
	case "localhost", "127.0.0.1", "::1":
		return LocalBackendURL
	default:
		return DeployedBackendURL
	}
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Worst case the token lands next to the binary's working dir.
		return ".studylife_token"
	}
	return filepath.Join(dir, "studylife", "token")
}
