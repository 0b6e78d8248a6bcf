package cmdflags

import (
	"github.com/urfave/cli/v2"
)

// TokenSecretEnvVar is the default environment variable holding the
// base64 encoded token signing secret.
const TokenSecretEnvVar = "TASKBOX_TOKEN_SECRET"

func Store(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "store",
		Aliases:     []string{"s"},
		Usage:       "Directory holding the taskbox database",
		Destination: out,
		Value:       *out,
	}
}

func SecretEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = TokenSecretEnvVar
	}
	return &cli.StringFlag{
		Name:        "secret-envvar-name",
		Usage:       "Name of the environment variable that holds the token signing secret. The secret itself should not be passed as an argument",
		Value:       *out,
		Destination: out,
	}
}
