package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type InitCmd struct{}

func (c *InitCmd) Run(app *App) error {
	return app.runLogged("Init", func(_ *logging.LogData) error {
		fmt.Fprintf(app.Out, "Ledger ready at %s\n", app.Config.LedgerFile)
		return nil
	})
}

type AddCmd struct {
	Date     string `help:"Transaction date, DD-MM-YYYY. Defaults to today."`
	Type     string `required enum:"Income,Expense" help:"Income or Expense."`
	Category string `required help:"Free-text category, e.g. Salary or Rent."`
	Amount   string `required help:"Non-negative amount, e.g. 1250.50."`
}

func (c *AddCmd) Run(app *App) error {
	return app.runLogged("Add", func(logData *logging.LogData) error {
		date := c.Date
		if date == "" {
			date = time.Now().Format(transaction.DateLayout)
		}

		tx, err := app.Service.Transaction.CreateTransaction(context.Background(), transaction.TransactionCreate{
			Date:     date,
			Type:     c.Type,
			Category: c.Category,
			Amount:   c.Amount,
		})
		if err != nil {
			return err
		}

		logData.AddData("category", tx.Category)
		fmt.Fprintln(app.Out, styleForType(tx.Type).Render(fmt.Sprintf(
			"Saved %s %s %s on %s", tx.Type, tx.Category, formatAmount(tx.Amount), tx.DateString())))
		return nil
	})
}

type ListCmd struct {
	FilterFlags `embed`
}

func (c *ListCmd) Run(app *App) error {
	return app.runLogged("List", func(logData *logging.LogData) error {
		filter, err := c.filter()
		if err != nil {
			return err
		}

		records, err := app.Service.Transaction.ListTransactions(context.Background(), filter)
		if err != nil {
			return err
		}

		logData.AddData("transactionCount", len(records))
		renderTransactions(app.Out, records)
		return nil
	})
}

type SummaryCmd struct {
	Category SummaryCategoryCmd `cmd help:"Total amount per category."`
	Monthly  SummaryMonthlyCmd  `cmd help:"Income and expense per month."`
}

type SummaryCategoryCmd struct {
	FilterFlags `embed`
}

func (c *SummaryCategoryCmd) Run(app *App) error {
	return app.runLogged("Summary.Category", func(_ *logging.LogData) error {
		filter, err := c.filter()
		if err != nil {
			return err
		}

		totals, err := app.Service.Transaction.SummarizeByCategory(context.Background(), filter)
		if err != nil {
			return err
		}

		renderCategoryTotals(app.Out, totals)
		return nil
	})
}

type SummaryMonthlyCmd struct {
	FilterFlags `embed`
}

func (c *SummaryMonthlyCmd) Run(app *App) error {
	return app.runLogged("Summary.Monthly", func(_ *logging.LogData) error {
		filter, err := c.filter()
		if err != nil {
			return err
		}

		months, err := app.Service.Transaction.CompareMonthly(context.Background(), filter)
		if err != nil {
			return err
		}

		renderMonthlyComparison(app.Out, months)
		return nil
	})
}

type ReportCmd struct {
	FilterFlags `embed`

	Format string `required enum:"pdf,excel" help:"Output format: pdf or excel."`
	Out    string `required type:"path" help:"Destination file."`
}

func (c *ReportCmd) Run(app *App) error {
	return app.runLogged("Report", func(logData *logging.LogData) error {
		filter, err := c.filter()
		if err != nil {
			return err
		}
		format, err := service.ParseReportFormat(c.Format)
		if err != nil {
			return err
		}

		logData.AddData("format", format)
		n, err := app.Service.Transaction.GenerateReport(context.Background(), filter, format, c.Out)
		if errors.Is(err, report.ErrNoData) {
			fmt.Fprintln(app.Out, errorStyle.Render("No transactions match the selected filters; nothing was written."))
			return err
		}
		if err != nil {
			return err
		}

		logData.AddData("transactionCount", n)
		fmt.Fprintf(app.Out, "Wrote %d transactions to %s\n", n, c.Out)
		return nil
	})
}

type ChartCmd struct {
	FilterFlags `embed`

	Kind string `required enum:"pie,bar" help:"pie for the category breakdown, bar for monthly income vs expense."`
	Out  string `required type:"path" help:"Destination PNG file."`
}

func (c *ChartCmd) Run(app *App) error {
	return app.runLogged("Chart", func(logData *logging.LogData) error {
		filter, err := c.filter()
		if err != nil {
			return err
		}
		kind, err := service.ParseChartKind(c.Kind)
		if err != nil {
			return err
		}

		logData.AddData("kind", kind)
		err = app.Service.Transaction.RenderChart(context.Background(), filter, kind, c.Out)
		if errors.Is(err, report.ErrNoData) {
			fmt.Fprintln(app.Out, errorStyle.Render("No transactions match the selected filters; nothing was drawn."))
			return err
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(app.Out, "Wrote %s chart to %s\n", kind, c.Out)
		return nil
	})
}

type ServeCmd struct {
	Port string `help:"Port to listen on (overrides HTTP_PORT)."`
}

func (c *ServeCmd) Run(app *App) error {
	port := app.Config.HTTPPort
	if c.Port != "" {
		port = c.Port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Storage.Initialize(ctx); err != nil {
		return err
	}

	op := operator.NewOperatorDelegator(app.Storage, app.Config.OperatorWorkers, app.Logger)
	op.Start()
	defer op.Stop()

	rest := api.Rest{
		Logger:   app.Logger,
		Port:     port,
		Storage:  app.Storage,
		Service:  app.Service,
		Operator: op,
	}
	return rest.Serve(ctx)
}
