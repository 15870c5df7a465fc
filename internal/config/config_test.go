package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 6*time.Second, cfg.CarouselInterval)
	assert.Equal(t, 5*time.Second, cfg.ContactConfirmationTTL)
	assert.Equal(t, 30*time.Minute, cfg.PageIdleTTL)
	assert.Equal(t, 1000, cfg.MaxPages)
	assert.Empty(t, cfg.ProjectsPath)
	assert.Equal(t, "HL", cfg.Owner.Initials)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PROJECTS_PATH", "/srv/projects.yaml")
	t.Setenv("CAROUSEL_INTERVAL", "10s")
	t.Setenv("SITE_OWNER", "Ada Lovelace")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/srv/projects.yaml", cfg.ProjectsPath)
	assert.Equal(t, 10*time.Second, cfg.CarouselInterval)
	assert.Equal(t, "Ada Lovelace", cfg.Owner.Name)
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("CAROUSEL_INTERVAL", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CAROUSEL_INTERVAL", "0s")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveMaxPages(t *testing.T) {
	t.Setenv("MAX_PAGES", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownGinMode(t *testing.T) {
	t.Setenv("GIN_MODE", "production")
	_, err := Load()
	assert.Error(t, err)
}
