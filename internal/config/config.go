// Package config reads server settings from the environment, after loading
// an optional .env file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds server settings; see FromEnv for variable names and defaults.
type Config struct {
	Port         string
	LogLevel     string
	LogFormat    string // "json" or "console"
	ClientOrigin string
	JWTSecret    string
	TokenTTL     time.Duration
	RoundIdleTTL time.Duration
	WordsFile    string // empty means the embedded dictionary
	WordLength   int
	DailySalt    string
	Production   bool
	CookieName   string
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment with defaults.
func FromEnv() *Config {
	return &Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:     time.Duration(envInt("ROUND_TOKEN_TTL_HOURS", 24)) * time.Hour,
		RoundIdleTTL: time.Duration(envInt("ROUND_IDLE_TTL_MINUTES", 120)) * time.Minute,
		WordsFile:    os.Getenv("WORDS_FILE"),
		WordLength:   envInt("WORD_LENGTH", 5),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		Production:   os.Getenv("APP_ENV") == "production",
		CookieName:   getEnv("COOKIE_NAME", "wordhack_round"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses a positive integer, falling back to def with a warning.
func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("invalid integer, using default")
		return def
	}
	return n
}
