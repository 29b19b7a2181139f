// Package main provides the snaketune CLI.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const version = "v0.1.0-dev"

const (
	// Flags.
	flagDebug       = "debug"
	flagConfig      = "config"
	flagData        = "data"
	flagLabelColumn = "label-column"
	flagHeader      = "header"
	flagSteps       = "steps"
	flagSeed        = "seed"
	flagLR          = "lr"
)

func main() {
	var logger *zap.Logger

	app := &cli.App{
		Name:  "snaketune",
		Usage: "tune scalar models against labeled data",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			if c.Bool(flagDebug) {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		After: func(*cli.Context) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintf(c.App.Writer, "snaketune %s\n", version)
					return err
				},
			},
			{
				Name:      "train",
				Usage:     "train a model on a CSV file",
				UsageText: "snaketune train --data FILE [--config FILE] [other options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagConfig,
						Aliases: []string{"c"},
						Usage:   "load training configuration from `FILE`",
					},
					&cli.StringFlag{
						Name:     flagData,
						Aliases:  []string{"d"},
						Usage:    "read labeled rows from CSV `FILE`",
						Required: true,
					},
					&cli.IntFlag{
						Name:  flagLabelColumn,
						Usage: "label column index, negative counts from the end",
						Value: -1,
					},
					&cli.BoolFlag{
						Name:  flagHeader,
						Usage: "skip the first CSV row",
					},
					&cli.IntFlag{
						Name:  flagSteps,
						Usage: "override the number of training steps",
					},
					&cli.Uint64Flag{
						Name:  flagSeed,
						Usage: "override the random seed",
					},
					&cli.Float64Flag{
						Name:  flagLR,
						Usage: "override the learning rate",
					},
				},
				Action: func(c *cli.Context) error {
					return trainAction(c, logger)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
