package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"powertools/internal/randkit"
)

func newDelayCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delay WAIT [JITTER_MIN JITTER_MAX]",
		Short: "Block for a duration in seconds, with optional random jitter",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, 3)
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("not a number: %q", arg)
				}
				values[i] = v
			}
			randkit.TimedDelay(ctx.logger(cmd), values[0], values[1], values[2])
			return nil
		},
	}
}

func newPointCommand(ctx *commandContext) *cobra.Command {
	var centered bool

	cmd := &cobra.Command{
		Use:   "point X Y HEIGHT WIDTH",
		Short: "Pick a uniformly random integer point inside a rectangle",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords := make([]float64, 4)
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("not a number: %q", arg)
				}
				coords[i] = v
			}

			p, err := randkit.PointInBox(coords[0], coords[1], coords[2], coords[3], centered)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", p.X, p.Y)
			return nil
		},
	}

	cmd.Flags().BoolVar(&centered, "centered", false, "Treat X,Y as the rectangle's center instead of its corner")
	return cmd
}
