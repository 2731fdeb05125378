package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/catalog-admin/internal/application/state"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/api"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/session"
	"github.com/jhoicas/catalog-admin/internal/interfaces/cli"
	"github.com/jhoicas/catalog-admin/pkg/config"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return 2
	}

	// stdout queda para las tablas; el log va a stderr.
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens, closeTokens, err := session.Open(ctx, cfg.Session, log)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Session.Driver).Msg("abrir almacenamiento de sesión")
		return 1
	}
	defer closeTokens()

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	}, tokens, log)
	if err != nil {
		log.Error().Err(err).Msg("cliente del backend")
		return 2
	}

	store, err := state.New(ctx, state.Deps{
		Auth:          client.Auth(),
		Categories:    client.Categories(),
		SubCategories: client.SubCategories(),
		Products:      client.Products(),
		Tokens:        tokens,
		Logger:        log,
	})
	if err != nil {
		log.Error().Err(err).Msg("construir store")
		return 1
	}

	app := cli.New(store, os.Stdout, log, cfg.API.Timeout()*2)
	switch err := app.Run(ctx, os.Args[1:]); {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrUsage):
		return 2
	case errors.Is(err, cli.ErrCommandFailed):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
}
