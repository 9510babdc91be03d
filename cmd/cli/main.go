package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/santosysantos/prodgate/internal/buildinfo"
	"github.com/santosysantos/prodgate/internal/client/cli"
	"github.com/santosysantos/prodgate/internal/client/config"
)

func main() {

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
