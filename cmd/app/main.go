// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/munchly/munchly/cmd/app/commands"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Munchly food-delivery and blog backends",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "food-server",
				Usage: "Start the food-delivery API server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunFoodServer(ctx, version)
				},
			},
			{
				Name:  "blog-server",
				Usage: "Start the blog API server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunBlogServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run blog database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
