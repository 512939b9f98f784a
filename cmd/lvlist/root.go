package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/me21jarus/dsa/core"
	"github.com/spf13/cobra"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	logLevel string
	variant  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "lvlist",
		Short:         "Singly/doubly, linear/circular linked list engine",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVarP(&flags.variant, "variant", "v", core.SinglyLinear.String(),
		"list variant: singly-linear, doubly-linear, singly-circular, doubly-circular")

	cmd.AddCommand(
		newRunCmd(flags),
		newDemoCmd(flags),
		newReadCmd(flags),
		newGenCmd(flags),
	)

	return cmd
}

// logger builds a text logger on w at the configured level.
func (f *rootFlags) logger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(f.logLevel))); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", f.logLevel, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// listVariant resolves the --variant flag.
func (f *rootFlags) listVariant() (core.Variant, error) {
	return core.ParseVariant(f.variant)
}

// releaseLogger mirrors node lifecycle events into the log at debug level.
func releaseLogger(log *slog.Logger) []core.Option[int] {
	return []core.Option[int]{
		core.WithInsertHook(func(v int) { log.Debug("node created", "value", v) }),
		core.WithReleaseHook(func(v int) { log.Debug("node released", "value", v) }),
	}
}
