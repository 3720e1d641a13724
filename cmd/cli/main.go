package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/cookbook/internal/buildinfo"
	"github.com/dmitrijs2005/cookbook/internal/client/cli"
	"github.com/dmitrijs2005/cookbook/internal/client/config"
)

func main() {

	// a missing .env is fine, the environment and flags still apply
	_ = godotenv.Load()

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
