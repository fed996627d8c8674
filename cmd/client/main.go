package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/buildinfo"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/cli"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/config"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx, os.Stdin); err != nil {
		log.Printf("%v", err)
	}

}
