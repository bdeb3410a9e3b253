// Package cli implements the tienda commands. Each command is a thin
// caller of one client operation: it prints the success payload or the
// failure's message verbatim, never synthesizing its own error text.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tienda/internal/app"
	"tienda/internal/auth"
	"tienda/internal/platform/config"
)

// ExitError carries a process exit code through cobra.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string { return e.Msg }

// fail wraps an operation's failure message for display.
func fail(msg string) error {
	return &ExitError{Code: 1, Msg: msg}
}

// runner is the signature shared by all command bodies.
type runner func(ctx context.Context, a *app.App, cmd *cobra.Command, args []string) error

// withApp loads config, wires the app, runs fn, and tears down storage.
func withApp(broker auth.CredentialBroker, fn runner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		a, err := app.New(cfg, broker)
		if err != nil {
			return err
		}
		defer a.Close()

		return fn(cmd.Context(), a, cmd, args)
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
