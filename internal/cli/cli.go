// Package cli defines the finance-tracker command line: one kong command per
// ledger operation plus serve, which runs the HTTP API over the same ledger.
package cli

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/query"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Globals are flags accepted by every command. Empty values keep the
// environment config.
type Globals struct {
	Ledger   string `name:"ledger" type:"path" help:"Ledger CSV file (overrides LEDGER_FILE)."`
	LogLevel string `name:"log-level" help:"Log level: debug, info, warn, error (overrides LOG_LEVEL)."`
}

// CLI is the kong grammar.
type CLI struct {
	Globals `embed`

	Init    InitCmd    `cmd help:"Create the ledger file with its header if it does not exist."`
	Add     AddCmd     `cmd help:"Record an income or expense transaction."`
	List    ListCmd    `cmd help:"Show transactions as a table."`
	Summary SummaryCmd `cmd help:"Show totals per category or per month."`
	Report  ReportCmd  `cmd help:"Export the selected transactions to PDF or Excel."`
	Chart   ChartCmd   `cmd help:"Render a category pie or monthly bar chart as PNG."`
	Serve   ServeCmd   `cmd help:"Run the HTTP API."`
}

// App is the state handed to every command's Run.
type App struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Storage *storage.Storage
	Service *service.Service
	Out     io.Writer
}

// NewApp applies the global flags over env and wires storage and services.
func NewApp(env *config.Config, globals Globals, out io.Writer) (*App, error) {
	cfg := *env
	if globals.Ledger != "" {
		cfg.LedgerFile = globals.Ledger
	}
	if globals.LogLevel != "" {
		cfg.LogLevel = globals.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := storage.NewStorage(&cfg)
	return &App{
		Config:  &cfg,
		Logger:  logging.SetupLogging(cfg.LogLevel),
		Storage: store,
		Service: service.NewService(store),
		Out:     out,
	}, nil
}

// runLogged wraps a command with a LogData carrying its name and duration.
// The ledger is initialized before the command runs.
func (a *App) runLogged(name string, run func(logData *logging.LogData) error) error {
	logData := logging.NewLogData(a.Logger)
	logData.AddData("command", name)
	logData.AddData("ledger", a.Config.LedgerFile)

	endTimer := logData.AddTiming("duration")
	err := a.Service.Transaction.Initialize(context.Background())
	if err == nil {
		err = run(logData)
	}
	endTimer()
	if err != nil {
		logData.Log().WithError(err).Warnf("Command.%s.Error", name)
		return err
	}

	logData.Log().Debugf("Command.%s.Complete", name)
	return nil
}

// FilterFlags select transactions by inclusive date range and type.
type FilterFlags struct {
	From string `name:"from" help:"Inclusive start date, DD-MM-YYYY."`
	To   string `name:"to" help:"Inclusive end date, DD-MM-YYYY."`
	Type string `name:"type" default:"All" enum:"All,Income,Expense" help:"Transaction type: All, Income or Expense."`
}

func (f FilterFlags) filter() (query.Filter, error) {
	return query.NewFilter(f.From, f.To, f.Type)
}
