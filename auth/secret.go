package auth

import (
	"fmt"
	"os"
)

// SecretFromEnv reads the signing secret from the named environment
// variable and wipes the variable afterwards, so the secret does not
// linger in the environment of child processes. An unset or empty
// variable is a startup error, never an empty key.
func SecretFromEnv(varname string, getfn func(string) string, setfn func(string, string) error) ([]byte, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if setfn == nil {
		setfn = os.Setenv
	}
	val := getfn(varname)
	setfn(varname, "")
	if len(val) == 0 {
		return nil, fmt.Errorf("auth: environment variable %v does not hold a signing secret", varname)
	}
	return []byte(val), nil
}
