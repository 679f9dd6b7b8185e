package main

import (
	"context"
	"log"
	"os"

	"github.com/sanaol/canteen/internal/buildinfo"
	"github.com/sanaol/canteen/internal/client/cli"
	"github.com/sanaol/canteen/internal/client/config"
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
