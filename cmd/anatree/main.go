package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/anatree/pkg/cli"
)

func main() {
	signals, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	options := append(cli.Options(), kong.BindTo(signals, (*context.Context)(nil)))
	ctx := kong.Parse(&cli.CLI, options...)
	err := ctx.Run(&cli.CLI.Globals)
	ctx.FatalIfErrorf(err)
}
