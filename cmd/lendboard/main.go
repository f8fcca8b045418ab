package main

import (
	"context"
	"log"
	"os"

	"github.com/kehindeadewusi/lendboard/internal/buildinfo"
	"github.com/kehindeadewusi/lendboard/internal/cli"
	"github.com/kehindeadewusi/lendboard/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
