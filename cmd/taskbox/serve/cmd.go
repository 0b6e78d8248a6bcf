package serve

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/taskbox/taskbox/auth"
	"github.com/taskbox/taskbox/auth/gate"
	"github.com/taskbox/taskbox/httpapi"
	"github.com/taskbox/taskbox/internal/cmdflags"
	"github.com/taskbox/taskbox/internal/httpserver"
	"github.com/taskbox/taskbox/store"
	"github.com/urfave/cli/v2"
)

type (
	// serveEnv seeds the flag defaults, so deployments can configure
	// the server entirely from the environment.
	serveEnv struct {
		Bind  string `env:"TASKBOX_BIND" envDefault:"localhost:7008"`
		Store string `env:"TASKBOX_STORE" envDefault:"taskbox"`
	}
)

func Cmd() *cli.Command {
	var cfg serveEnv
	envErr := env.Parse(&cfg)
	bindAddr := cfg.Bind
	storeDir := cfg.Store
	var secretVar string
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the taskbox HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "bind",
				Usage:       "Address to bind the HTTP server to",
				Value:       bindAddr,
				Destination: &bindAddr,
			},
			cmdflags.Store(&storeDir),
			cmdflags.SecretEnvVar(&secretVar),
		},
		Before: func(*cli.Context) error {
			return envErr
		},
		Action: func(ctx *cli.Context) error {
			secret, err := auth.SecretFromEnv(secretVar, os.Getenv, os.Setenv)
			if err != nil {
				return err
			}
			codec, err := auth.NewCodec(secret)
			if err != nil {
				return err
			}
			st, err := store.Open(ctx.Context, storeDir)
			if err != nil {
				return err
			}
			defer st.Close()
			g := gate.New(codec, auth.NewClaimsCache())
			api := httpapi.New(st, codec)
			return httpserver.Serve(ctx.Context, bindAddr, api.Handler(g))
		},
	}
}
