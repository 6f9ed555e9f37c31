package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables. Credentials are injected into each analyzer at construction
// time; an empty credential selects that module's synthetic data path.
type Config struct {
	Port        string
	CORSOrigins string
	Debug       bool
	LogLevel    string

	// Upstream API credentials
	PageSpeedAPIKey string
	GeminiAPIKey    string
	ApifyAPIToken   string
	BingAPIKey      string
	GSCAccessToken  string
}

// Load reads configuration from .env files and environment variables.
func Load() Config {
	// Try .env.development first (local development), then regular .env.
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}

	return Config{
		Port:            getEnv("PORT", "8000"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		Debug:           getEnvAsBool("DEBUG", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		PageSpeedAPIKey: os.Getenv("PAGESPEED_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		ApifyAPIToken:   os.Getenv("APIFY_API_TOKEN"),
		BingAPIKey:      os.Getenv("BING_API_KEY"),
		GSCAccessToken:  os.Getenv("GSC_ACCESS_TOKEN"),
	}
}

// HasPageSpeed reports whether live PageSpeed calls are enabled.
func (c Config) HasPageSpeed() bool { return c.PageSpeedAPIKey != "" }

// HasGemini reports whether live Gemini calls are enabled.
func (c Config) HasGemini() bool { return c.GeminiAPIKey != "" }

// HasBing reports whether live Bing Webmaster calls are enabled.
func (c Config) HasBing() bool { return c.BingAPIKey != "" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}
