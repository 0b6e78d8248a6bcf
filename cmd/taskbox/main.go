package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/taskbox/taskbox/cmd/taskbox/serve"
	"github.com/taskbox/taskbox/cmd/taskbox/users"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "taskbox",
		Usage: "Your tasks, projects and categories in one place",
		Commands: []*cli.Command{
			serve.Cmd(),
			users.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
