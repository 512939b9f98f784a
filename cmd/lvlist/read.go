package main

import (
	"fmt"

	"github.com/me21jarus/dsa/builder"
	"github.com/me21jarus/dsa/console"
	"github.com/me21jarus/dsa/core"
	"github.com/spf13/cobra"
)

func newReadCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Read n, n integers and an optional key from stdin; print the list and the key's position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := flags.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			variant, err := flags.listVariant()
			if err != nil {
				return err
			}

			in, err := console.ReadInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			log.Info("input decoded", "count", len(in.Values), "has_key", in.HasKey)

			list, err := builder.Build(variant, len(in.Values),
				builder.WithValues(in.Values...),
				builder.WithListOptions(releaseLogger(log)...))
			if err != nil {
				return err
			}
			defer list.Clear()

			out := cmd.OutOrStdout()
			if err := console.WriteValues(out, list.All()); err != nil {
				return err
			}
			if in.HasKey {
				_, err = fmt.Fprintln(out, core.IndexOf(list, in.Key))
			}

			return err
		},
	}
}
