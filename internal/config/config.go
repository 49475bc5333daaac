// Load envs from .env
// Load YAML config
// Apply env overrides and defaults

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Tier 1: managed scraping service + text model
	FirecrawlAPIKey   string
	FirecrawlEndpoint string

	// Extraction models (tiers 1 and 3)
	GroqAPIKey      string
	GroqBaseURL     string
	GroqModel       string
	GroqVisionModel string

	// Tier 3: screenshot-rendering service
	ScreenshotAPIKey   string
	ScreenshotEndpoint string

	// Per-tier timeouts; each tier enforces its own independently
	NavigationTimeout time.Duration
	ScrapeTimeout     time.Duration
	SnapshotTimeout   time.Duration

	// Caller-side collaborators (server only)
	DatabaseURL    string
	TelegramToken  string
	TelegramChatID int64
}

// rawConfig mirrors the YAML file (snake_case, durations as strings).
type rawConfig struct {
	FirecrawlEndpoint  string `yaml:"firecrawl_endpoint"`
	GroqBaseURL        string `yaml:"groq_base_url"`
	GroqModel          string `yaml:"groq_model"`
	GroqVisionModel    string `yaml:"groq_vision_model"`
	ScreenshotEndpoint string `yaml:"screenshot_endpoint"`
	NavigationTimeout  string `yaml:"navigation_timeout"`
	ScrapeTimeout      string `yaml:"scrape_timeout"`
	SnapshotTimeout    string `yaml:"snapshot_timeout"`
}

// Load reads .env, the YAML config at path, and env overrides. API keys come
// exclusively from the environment; a missing key disables its tier (the
// pipeline skips it) rather than failing startup.
func Load(path string) *Config {
	_ = godotenv.Load()

	var raw rawConfig
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	cfg := &Config{
		FirecrawlAPIKey:    os.Getenv("FIRECRAWL_API_KEY"),
		FirecrawlEndpoint:  raw.FirecrawlEndpoint,
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:        raw.GroqBaseURL,
		GroqModel:          raw.GroqModel,
		GroqVisionModel:    raw.GroqVisionModel,
		ScreenshotAPIKey:   os.Getenv("SCREENSHOT_API_KEY"),
		ScreenshotEndpoint: raw.ScreenshotEndpoint,
		NavigationTimeout:  parseDuration(raw.NavigationTimeout, "navigation_timeout", 30*time.Second),
		ScrapeTimeout:      parseDuration(raw.ScrapeTimeout, "scrape_timeout", 60*time.Second),
		SnapshotTimeout:    parseDuration(raw.SnapshotTimeout, "snapshot_timeout", 90*time.Second),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		TelegramToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	return cfg
}

func parseDuration(value, name string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", name, value, err)
	}
	return d
}
