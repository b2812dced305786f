// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/hashprefix/internal/errors"
	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
)

const version = "1.0.0"

func newApp() *cli.Command {
	return &cli.Command{
		Name:     "hashprefix",
		Usage:    "Search random MD5 hashes for one starting with '00'",
		Version:  version,
		Flags:    searchFlags(),
		Action:   searchAction,
		Commands: getCommands(),
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		// The report already describes an exhausted search.
		if !errors.Is(err, hashDomain.ErrHashNotFound) {
			slog.Error("application error", slog.Any("error", err))
		}
		os.Exit(1)
	}
}
