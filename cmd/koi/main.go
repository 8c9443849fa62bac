// Package main is the entry point for the Koi CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	koicli "github.com/koi-shell/koi/internal/cli"
	"github.com/koi-shell/koi/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:                  "koi",
		Usage:                 "Structured command shell with interactive completion",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("KOI_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to config file",
				Sources: cli.EnvVars("KOI_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "complete",
				Usage: "Compute completion suggestions for a line and cursor",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "cursor",
						Value: -1,
						Usage: "Cursor byte offset (default: end of line)",
					},
					&cli.BoolFlag{
						Name:  "plain",
						Usage: "Tab-separated output instead of styled rendering",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return koicli.Complete(koicli.CompleteParams{
						Line:       strings.Join(cmd.Args().Slice(), " "),
						Cursor:     int(cmd.Int("cursor")),
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						Plain:      cmd.Bool("plain"),
					})
				},
			},
			{
				Name:  "run",
				Usage: "Parse and evaluate one line of koi source",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return koicli.Run(koicli.RunParams{
						Line:       strings.Join(cmd.Args().Slice(), " "),
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
					})
				},
			},
			{
				Name:  "validate",
				Usage: "Validate a Koi configuration file",
				Action: func(_ context.Context, cmd *cli.Command) error {
					path := cmd.String("config")
					if cmd.Args().Len() > 0 {
						path = cmd.Args().Get(0)
					}
					return koicli.Validate(path, nil)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
