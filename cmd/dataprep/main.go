// Command dataprep prepares the reference car table, or a CSV file, for a
// regression model and reports the most relevant features.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/askiada/go-dataprep/internal/cars"
	"github.com/askiada/go-dataprep/internal/config"
	"github.com/askiada/go-dataprep/internal/logging"
	"github.com/askiada/go-dataprep/internal/report"
	"github.com/askiada/go-dataprep/internal/workflow"
	"github.com/askiada/go-dataprep/pkg/table"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dataprep:", err)
		os.Exit(1)
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "TOML configuration file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "console or json",
		},
	}
}

func runFlags() []cli.Flag {
	return append(configFlags(),
		&cli.StringFlag{
			Name:  "data",
			Usage: "CSV file with a header row, used instead of the car table",
		},
		&cli.StringFlag{
			Name:  "graph",
			Usage: "write the DOT graph of the stages to this file",
		},
	)
}

// loadConfig returns the configuration from --config, with the logging flags
// applied on top.
func loadConfig(cliCtx *cli.Context) (config.Config, error) {
	cfg := config.NewConfig()
	if path := cliCtx.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}
	if cliCtx.IsSet("log-level") {
		cfg.Logging.Level = cliCtx.String("log-level")
	}
	if cliCtx.IsSet("log-format") {
		cfg.Logging.Format = cliCtx.String("log-format")
	}

	return cfg, errors.Wrap(cfg.Validate(), "invalid configuration")
}

func loadData(path string) (*table.Table, error) {
	if path == "" {
		return cars.Table(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open data")
	}
	defer file.Close()

	t, err := table.ReadCSV(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	return t, nil
}

func runAction(stdout, stderr io.Writer) cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		cfg, err := loadConfig(cliCtx)
		if err != nil {
			return err
		}
		logger, err := logging.NewWithWriter(stderr, cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		input, err := loadData(cliCtx.String("data"))
		if err != nil {
			return err
		}

		var opts []workflow.Option
		if path := cliCtx.String("graph"); path != "" {
			opts = append(opts, workflow.WithGraph(path))
		}

		_, err = workflow.New(cfg, logger, report.New(stdout), opts...).Run(cliCtx.Context, input)
		if err != nil {
			logger.Error("preparation failed", zap.String("error", err.Error()))

			return err
		}

		return nil
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "dataprep",
		Usage:     "clean, encode, scale and select the features of a table",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     runFlags(),
		Action:    runAction(stdout, stderr),
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "run the preparation (default)",
				Flags:  runFlags(),
				Action: runAction(stdout, stderr),
			},
			{
				Name:  "config",
				Usage: "print the effective configuration as TOML",
				Flags: configFlags(),
				Action: func(cliCtx *cli.Context) error {
					cfg, err := loadConfig(cliCtx)
					if err != nil {
						return err
					}

					return cfg.Write(stdout)
				},
			},
		},
	}
}
