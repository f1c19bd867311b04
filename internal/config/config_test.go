package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBaseURL(t *testing.T) {
	t.Run("loopback hosts map to the local backend", func(t *testing.T) {
		assert.Equal(t, LocalBackendURL, ResolveBaseURL("localhost"))
		assert.Equal(t, LocalBackendURL, ResolveBaseURL("127.0.0.1"))
		assert.Equal(t, LocalBackendURL, ResolveBaseURL("::1"))
	})

	t.Run("anything else maps to the deployed origin", func(t *testing.T) {
		assert.Equal(t, DeployedBackendURL, ResolveBaseURL("mystudylife.app"))
		assert.Equal(t, DeployedBackendURL, ResolveBaseURL(""))
	})
}

func TestLoad(t *testing.T) {
	t.Run("explicit URL override wins", func(t *testing.T) {
		t.Setenv("STUDYLIFE_API_URL", "http://10.0.0.5:9000/")
		cfg := Load()
		assert.Equal(t, "http://10.0.0.5:9000", cfg.BaseURL)
	})

	t.Run("host resolution when no override", func(t *testing.T) {
		t.Setenv("STUDYLIFE_API_URL", "")
		t.Setenv("STUDYLIFE_HOST", "localhost")
		cfg := Load()
		assert.Equal(t, LocalBackendURL, cfg.BaseURL)
	})

	t.Run("token file override", func(t *testing.T) {
		t.Setenv("STUDYLIFE_TOKEN_FILE", "/tmp/tok")
		cfg := Load()
		assert.Equal(t, "/tmp/tok", cfg.TokenPath)
	})
}
