package main

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/allisson/hashprefix/cmd/app/commands"
	"github.com/allisson/hashprefix/internal/app"
	"github.com/allisson/hashprefix/internal/config"
)

func getHashCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "search",
			Usage:  "Generate random hashes until one starts with '00'",
			Flags:  searchFlags(),
			Action: searchAction,
		},
		{
			Name:  "generate",
			Usage: "Print random MD5 hashes",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of hashes to print",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if err := cfg.Validate(); err != nil {
					return err
				}
				stdio := commands.DefaultIO()
				container := app.NewContainer(cfg, app.WithLogOutput(stdio.ErrWriter))
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunGenerate(
					container.HashGenerator(),
					container.Logger(),
					stdio.Writer,
					cmd.Int("count"),
				)
			},
		},
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "max-attempts",
			Aliases: []string{"n"},
			Usage:   "Maximum number of attempts (default from SEARCH_MAX_ATTEMPTS, 1000)",
		},
		&cli.IntFlag{
			Name:    "log-every",
			Aliases: []string{"l"},
			Usage:   "Print progress every N attempts, 0 disables (default from SEARCH_LOG_EVERY, 100)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "text",
			Usage:   "Output format: 'text' or 'json'",
		},
	}
}

// resolveSearch loads the configuration, applies flag overrides on top of the
// environment and parses the output format.
func resolveSearch(cmd *cli.Command) (*config.Config, commands.Format, error) {
	format, err := commands.ParseFormat(cmd.String("format"))
	if err != nil {
		return nil, "", err
	}

	cfg := config.Load()
	if cmd.IsSet("max-attempts") {
		cfg.SearchMaxAttempts = cmd.Int("max-attempts")
	}
	if cmd.IsSet("log-every") {
		cfg.SearchLogEvery = cmd.Int("log-every")
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, format, nil
}

func searchAction(ctx context.Context, cmd *cli.Command) error {
	cfg, format, err := resolveSearch(cmd)
	if err != nil {
		return err
	}

	stdio := commands.DefaultIO()
	report := stdio.Writer
	if format == commands.FormatJSON {
		report = io.Discard
	}

	container := app.NewContainer(cfg, app.WithOutput(report), app.WithLogOutput(stdio.ErrWriter))
	defer commands.CloseContainer(container, container.Logger())

	useCase, err := container.SearchUseCase()
	if err != nil {
		return err
	}
	provider, err := container.MetricsProvider()
	if err != nil {
		return err
	}

	return commands.RunSearch(
		ctx,
		useCase,
		provider,
		container.Logger(),
		stdio,
		container.Config().SearchMaxAttempts,
		container.Config().SearchLogEvery,
		format,
	)
}
