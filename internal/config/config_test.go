package config

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestLoadWithoutDotEnvIsSilent(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
		_ = os.Chdir(wd)
	})

	if c := Load(); c == nil {
		t.Fatal("Load() = nil")
	}
	if buf.Len() != 0 {
		t.Fatalf("Load logged before the level was configured: %s", buf.String())
	}
}

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "JWT_SECRET", "ROUND_TOKEN_TTL_HOURS", "WORDS_FILE", "WORD_LENGTH", "APP_ENV"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	if c.Port != "5175" || c.LogLevel != "info" || c.WordLength != 5 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.TokenTTL != 24*time.Hour || c.WordsFile != "" || c.Production {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ROUND_TOKEN_TTL_HOURS", "2")
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("APP_ENV", "production")
	c := FromEnv()
	if c.Port != "9000" || c.TokenTTL != 2*time.Hour || c.WordLength != 6 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.WordsFile != "/tmp/words.txt" || !c.Production {
		t.Fatalf("overrides not applied: %+v", c)
	}
}

func TestEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("WORD_LENGTH", "five")
	if got := FromEnv().WordLength; got != 5 {
		t.Fatalf("WordLength = %d, want 5", got)
	}
	t.Setenv("WORD_LENGTH", "-3")
	if got := FromEnv().WordLength; got != 5 {
		t.Fatalf("WordLength = %d, want 5", got)
	}
}
