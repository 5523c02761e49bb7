package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nicksheffield/Wordhack/internal/config"
	"github.com/nicksheffield/Wordhack/internal/httpserver"
	"github.com/nicksheffield/Wordhack/internal/store"
	"github.com/nicksheffield/Wordhack/internal/words"
)

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	list, err := words.Load(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load dictionary")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	go pruneRounds(ctx, mem, cfg.RoundIdleTTL)

	srv := httpserver.New(cfg, mem, list)
	log.Info().Str("port", cfg.Port).Int("words", list.Len()).Msg("starting wordhack")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// pruneRounds drops rounds idle for longer than ttl until ctx ends.
func pruneRounds(ctx context.Context, st store.Store, ttl time.Duration) {
	t := time.NewTicker(ttl / 4)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.Prune(ctx, now.Add(-ttl)); n > 0 {
				log.Debug().Int("rounds", n).Msg("pruned idle rounds")
			}
		}
	}
}
