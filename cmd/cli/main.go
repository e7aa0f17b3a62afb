package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/csyeteam03/trace-console/internal/buildinfo"
	"github.com/csyeteam03/trace-console/internal/client/cli"
	"github.com/csyeteam03/trace-console/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
