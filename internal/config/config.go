package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every startup setting. The two AI credentials are
// required; there is no degraded startup mode without them.
type Config struct {
	Port string
	Env  string

	HFToken      string
	GeminiAPIKey string
	GeminiModel  string

	DatabaseURL string

	ClassifyURL     string
	ClassifyTimeout time.Duration
	GenerateTimeout time.Duration

	// TaxonomyCacheTTL > 0 enables the snapshot cache; zero keeps the
	// default fetch-per-request behavior.
	TaxonomyCacheTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	hfToken := strings.TrimSpace(os.Getenv("HF_TOKEN"))
	if hfToken == "" {
		return nil, fmt.Errorf("missing HF_TOKEN")
	}
	geminiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if geminiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}

	port := ":8001"
	if envPort := strings.TrimSpace(os.Getenv("PORT")); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			port = envPort
		} else {
			port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:             port,
		Env:              env,
		HFToken:          hfToken,
		GeminiAPIKey:     geminiKey,
		GeminiModel:      firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-flash-latest"),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ClassifyURL:      strings.TrimSpace(os.Getenv("CLASSIFY_URL")),
		ClassifyTimeout:  durationEnv("CLASSIFY_TIMEOUT", 20*time.Second),
		GenerateTimeout:  durationEnv("GENERATE_TIMEOUT", 30*time.Second),
		TaxonomyCacheTTL: durationEnv("TAXONOMY_CACHE_TTL", 0),
	}, nil
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
