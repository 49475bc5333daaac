package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg := Load(path)
	assert.Equal(t, 30*time.Second, cfg.NavigationTimeout)
	assert.Equal(t, 60*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, 90*time.Second, cfg.SnapshotTimeout)
}

func TestLoad_YAMLValues(t *testing.T) {
	path := writeConfig(t, `
navigation_timeout: 15s
scrape_timeout: 45s
groq_model: llama-test
firecrawl_endpoint: https://scrape.internal/v1/scrape
`)

	cfg := Load(path)
	assert.Equal(t, 15*time.Second, cfg.NavigationTimeout)
	assert.Equal(t, 45*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, "llama-test", cfg.GroqModel)
	assert.Equal(t, "https://scrape.internal/v1/scrape", cfg.FirecrawlEndpoint)
}

func TestLoad_EnvKeys(t *testing.T) {
	t.Setenv("FIRECRAWL_API_KEY", "fc-test")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("TELEGRAM_CHAT_ID", "123456")

	cfg := Load(writeConfig(t, ""))
	assert.Equal(t, "fc-test", cfg.FirecrawlAPIKey)
	assert.Equal(t, "gsk-test", cfg.GroqAPIKey)
	assert.Equal(t, int64(123456), cfg.TelegramChatID)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, 30*time.Second, cfg.NavigationTimeout)
}
