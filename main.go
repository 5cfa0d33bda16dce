package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	_ "time/tzdata" // --location accepts any IANA time zone

	"github.com/jxs13/niceduration/config"
	"github.com/jxs13/niceduration/internal/logx"
	"github.com/jxs13/niceduration/internal/parse"
	"github.com/jxs13/niceduration/internal/timerutils"
	"github.com/jxsl13/cli-config-boilerplate/cliconfig"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	err := NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	rootContext := rootContext{
		Context: ctx,
	}

	cmd := &cobra.Command{
		Use:   "niceduration [values...]",
		Short: "format durations into human readable strings, e.g. 63234 -> 1m 3s 234ms",
		Long: `Formats durations into human readable strings.

Values are passed as arguments or as a comma separated list, e.g.
  niceduration --short 63234 1000,10000
  niceduration --micro --unit us 3235386
  niceduration --unit s 3.2353865
  niceduration --since "2025-05-17 15:30" --location Europe/Berlin --watch 1s`,
		Args: cobra.ArbitraryArgs,
		RunE: rootContext.RunE,
		PostRunE: func(cmd *cobra.Command, args []string) error {
			if rootContext.Logger != nil {
				_ = rootContext.Logger.Sync()
			}
			cancel()
			return nil
		},
	}

	// register flags but defer parsing and validation of the final values
	cmd.PreRunE = rootContext.PreRunE(cmd)

	cmd.AddCommand(NewCompletionCmd(cmd.Name()))
	return cmd
}

type rootContext struct {
	Context context.Context

	// set in PreRunE
	Config *config.Config
	Logger *zap.Logger
}

func (c *rootContext) PreRunE(cmd *cobra.Command) func(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	c.Config = config.New()
	runParser := cliconfig.RegisterFlags(c.Config, true, cmd)
	return func(cmd *cobra.Command, args []string) error {
		err := runParser()
		if err != nil {
			return err
		}

		err = c.Config.Validate()
		if err != nil {
			return err
		}

		logger, err := logx.New(c.Config.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		c.Logger = logger
		return nil
	}
}

func (c *rootContext) RunE(cmd *cobra.Command, args []string) error {
	var (
		out = cmd.OutOrStdout()
		cfg = c.Config
	)

	if cfg.Since == "" {
		var values []string
		for _, arg := range args {
			values = append(values, parse.List(arg)...)
		}
		if len(values) == 0 {
			return fmt.Errorf("no values to format: pass at least one value or --since")
		}

		c.Logger.Debug("formatting values",
			zap.Strings("values", values),
			zap.String("unit", cfg.Unit),
			zap.Bool("micro", cfg.Micro),
		)
		return formatValues(out, cfg, values)
	}

	if len(args) > 0 {
		return fmt.Errorf("values cannot be combined with --since")
	}

	printSince := func(context.Context) (time.Duration, error) {
		s, err := formatSince(cfg, time.Now())
		if err != nil {
			return 0, err
		}
		_, err = fmt.Fprintln(out, s)
		return 0, err
	}

	if cfg.Watch == 0 {
		_, err := printSince(c.Context)
		return err
	}

	c.Logger.Debug("watching elapsed time",
		zap.Time("since", cfg.SinceTime),
		zap.Duration("interval", cfg.Watch),
	)

	// the first failure ends the watch and is returned like in the one-shot mode
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	var watchErr error
	timerutils.Loop(ctx, cfg.Watch, cfg.Watch, func(ctx context.Context) (time.Duration, error) {
		reset, err := printSince(ctx)
		if err != nil {
			watchErr = err
			cancel()
		}
		return reset, err
	}, func() {
		c.Logger.Debug("stopped watching elapsed time")
	})
	return watchErr
}
