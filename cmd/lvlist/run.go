package main

import (
	"fmt"

	"github.com/me21jarus/dsa/core"
	"github.com/me21jarus/dsa/script"
	"github.com/spf13/cobra"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run SCRIPT-FILE...",
		Short: "Replay YAML command scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			runner := script.NewRunner(cmd.OutOrStdout(),
				script.WithLogger(log),
				script.WithListOptions(releaseLogger(log)...))

			for _, path := range args {
				sc, err := script.Load(path)
				if err != nil {
					return err
				}
				if _, err := runner.Run(cmd.Context(), sc); err != nil {
					return fmt.Errorf("%s: %w", sc.Name, err)
				}
			}

			return nil
		},
	}
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [VARIANT]",
		Short: "Run the built-in demonstration for one variant, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var demos []*script.Script
			if len(args) == 1 {
				v, err := core.ParseVariant(args[0])
				if err != nil {
					return err
				}
				d, err := script.Demo(v)
				if err != nil {
					return err
				}
				demos = append(demos, d)
			} else if demos, err = script.Demos(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			runner := script.NewRunner(out,
				script.WithLogger(log),
				script.WithListOptions(releaseLogger(log)...))
			for _, d := range demos {
				fmt.Fprintf(out, "== %s\n", d.Name)
				if _, err := runner.Run(cmd.Context(), d); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
