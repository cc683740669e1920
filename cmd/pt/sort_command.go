package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"powertools/internal/sortkit"
)

func newSortCommand(ctx *commandContext) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "sort VALUE...",
		Short: "Sort integers with one of the classic quadratic algorithms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("not an integer: %q", arg)
				}
				values = append(values, v)
			}

			switch algorithm {
			case "bubble":
				sortkit.Bubble(values)
			case "selection":
				sortkit.Selection(values)
			case "insertion":
				sortkit.Insertion(values)
			default:
				return fmt.Errorf("unknown algorithm %q: choose bubble, selection, or insertion", algorithm)
			}

			out := make([]string, len(values))
			for i, v := range values {
				out[i] = strconv.Itoa(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "bubble", "Sorting algorithm: bubble, selection, or insertion")
	return cmd
}
