package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/automatic"
	"github.com/domino14/gomoku/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("self-play-failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	var seeds []uint64
	if path := cfg.GetString(config.ConfigSeedsFile); path != "" {
		var err error
		if seeds, err = automatic.LoadSeeds(path); err != nil {
			return err
		}
	} else {
		seeds = automatic.GenerateSeeds(cfg.GetInt(config.ConfigGames))
		if path := cfg.GetString(config.ConfigSaveSeeds); path != "" {
			if err := automatic.SaveSeeds(seeds, path); err != nil {
				return err
			}
		}
	}

	if addr := cfg.GetString(config.ConfigDebugAddr); addr != "" {
		go func() {
			log.Info().Str("addr", addr).Msg("debug-server-listening")
			if err := http.ListenAndServe(addr, automatic.DebugRouter()); err != nil {
				log.Error().Err(err).Msg("debug-server-failed")
			}
		}()
	}

	var out io.Writer
	if path := cfg.GetString(config.ConfigGamesOut); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := automatic.Play(ctx, cfg, seeds, cfg.GetInt(config.ConfigThreads), out)
	if summary != nil {
		fmt.Println(summary)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
