package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "SQLITE_PATH", "UPLOADS_DIR", "FRONTEND_DIR", "CORS_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "artgallery.db", cfg.SQLitePath)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.Equal(t, "dist", cfg.FrontendDir)
	assert.Equal(t, TokenTTL, cfg.TokenTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/gallery")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://localhost/gallery", cfg.DatabaseURL)
}
