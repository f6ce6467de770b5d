package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/carson-networks/finance-tracker/internal/cli"
	"github.com/carson-networks/finance-tracker/internal/config"
)

func main() {
	var grammar cli.CLI
	ctx := kong.Parse(&grammar,
		kong.Name("finance-tracker"),
		kong.Description("Record income and expenses in a CSV ledger, then query, report and chart them."),
		kong.UsageOnError(),
	)

	envConfig, err := config.ProcessEnvironmentVariables()
	ctx.FatalIfErrorf(err)

	app, err := cli.NewApp(envConfig, grammar.Globals, os.Stdout)
	ctx.FatalIfErrorf(err)

	app.Logger.WithField("command", ctx.Command()).Debug("finance-tracker starting")
	ctx.FatalIfErrorf(ctx.Run(app))
}
