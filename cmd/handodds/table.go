package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/lox/handodds/internal/odds"
	"github.com/lox/handodds/poker"
)

type TableCmd struct {
	Category  []string `short:"C" help:"Only report these categories (e.g. flush,two-pair)" env:"HANDODDS_CATEGORY"`
	Exclusive bool     `short:"x" help:"Count each hand once, under its best category"`
	Progress  bool     `short:"p" help:"Show a progress bar while enumerating"`
}

func (cmd *TableCmd) Run(g *Globals) error {
	s, err := g.load()
	if err != nil {
		return err
	}

	categories, err := cmd.categories(s)
	if err != nil {
		return err
	}
	if cmd.Exclusive && categories != nil {
		return fmt.Errorf("--category cannot be combined with --exclusive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := func(ctx context.Context, progress odds.ProgressReporter) (*odds.Report, error) {
		calc := odds.New(odds.Config{
			Workers:  s.config.Workers,
			HandSize: s.config.HandSize,
			Logger:   s.logger,
			Progress: progress,
		})
		if cmd.Exclusive {
			return calc.Distribution(ctx, s.deck, s.rules)
		}
		return calc.Table(ctx, s.deck, s.rules, categories)
	}

	var report *odds.Report
	if cmd.Progress {
		report, err = runWithProgress(ctx, g.errOut(), run)
	} else {
		report, err = run(ctx, nil)
	}
	if err != nil {
		return err
	}

	s.logger.Info("Enumeration finished", "hands", report.Total, "elapsed", report.Elapsed)
	renderReport(g.out(), report, s.rules)
	return nil
}

// categories resolves the --category flag, falling back to the config file
func (cmd *TableCmd) categories(s *settings) ([]poker.Category, error) {
	if len(cmd.Category) == 0 {
		return s.config.ParseCategories()
	}
	out := make([]poker.Category, 0, len(cmd.Category))
	for _, name := range cmd.Category {
		c, err := poker.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
