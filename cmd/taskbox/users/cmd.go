package users

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/taskbox/taskbox/auth"
	"github.com/taskbox/taskbox/internal/cmdflags"
	"github.com/taskbox/taskbox/store"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	storeDir := "taskbox"
	return &cli.Command{
		Name:  "users",
		Usage: "Manage registered users without going through the HTTP API",
		Flags: []cli.Flag{
			cmdflags.Store(&storeDir),
		},
		Subcommands: []*cli.Command{
			registerCmd(&storeDir),
		},
	}
}

func registerCmd(storeDir *string) *cli.Command {
	var name string
	var email string
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new user (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "Display name of the user",
				Destination: &name,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "Email to register, must be unique",
				Destination: &email,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return sc.Err()
			}
			password := strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			st, err := store.Open(ctx.Context, *storeDir)
			if err != nil {
				return err
			}
			defer st.Close()
			_, err = st.CreateUser(ctx.Context, name, email, hash)
			return err
		},
	}
}
