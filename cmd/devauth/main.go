package main

import (
	"context"
	"log"
	"os"

	"github.com/santosysantos/prodgate/internal/buildinfo"
	"github.com/santosysantos/prodgate/internal/devauth"
	"github.com/santosysantos/prodgate/internal/devauth/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := devauth.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
