package main

import (
	"context"
	"log"
	"os"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/buildinfo"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/server"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

}
