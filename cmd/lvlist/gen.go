package main

import (
	"fmt"

	"github.com/me21jarus/dsa/builder"
	"github.com/me21jarus/dsa/console"
	"github.com/spf13/cobra"
)

// genFlags selects the value generator for the gen command.
type genFlags struct {
	n        int
	seed     int64
	scheme   string
	start    int
	step     int
	min, max int
	value    int
}

func (g *genFlags) options(cmd *cobra.Command) ([]builder.BuilderOption, error) {
	var opts []builder.BuilderOption
	if cmd.Flags().Changed("seed") {
		opts = append(opts, builder.WithSeed(g.seed))
	}

	switch g.scheme {
	case "ascending":
		opts = append(opts, builder.WithValueFn(builder.AscendingValues(g.start, g.step)))
	case "constant":
		opts = append(opts, builder.WithValueFn(builder.ConstantValue(g.value)))
	case "uniform":
		if g.max < g.min {
			return nil, fmt.Errorf("--min %d > --max %d", g.min, g.max)
		}
		opts = append(opts, builder.WithValueFn(builder.UniformValues(g.min, g.max)))
	default:
		return nil, fmt.Errorf("--scheme %q: want ascending, constant or uniform", g.scheme)
	}

	return opts, nil
}

func newGenCmd(flags *rootFlags) *cobra.Command {
	g := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Build a list from a value generator and print it",
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
			opts, err := g.options(cmd)
			if err != nil {
				return err
			}
			opts = append(opts, builder.WithListOptions(releaseLogger(log)...))
			list, err := builder.Build(variant, g.n, opts...)
			if err != nil {
				return err
			}
			defer list.Clear()
			if err := list.Validate(); err != nil {
				return err
			}

			return console.WriteValues(cmd.OutOrStdout(), list.All())
		},
	}
	f := cmd.Flags()
	f.IntVarP(&g.n, "count", "n", 10, "number of elements")
	f.Int64Var(&g.seed, "seed", 0, "RNG seed (required by the uniform scheme)")
	f.StringVar(&g.scheme, "scheme", "ascending", "value scheme: ascending, constant, uniform")
	f.IntVar(&g.start, "start", builder.DefaultStart, "first value of the ascending scheme")
	f.IntVar(&g.step, "step", builder.DefaultStep, "increment of the ascending scheme")
	f.IntVar(&g.min, "min", 0, "lower bound of the uniform scheme")
	f.IntVar(&g.max, "max", 100, "upper bound of the uniform scheme")
	f.IntVar(&g.value, "value", 0, "payload of the constant scheme")

	return cmd
}
