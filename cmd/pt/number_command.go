package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"powertools/internal/numword"
)

func newNumberCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "number INPUT...",
		Short: "Normalize digits or English word-numbers to an integer",
		Long: `Normalize numeric input to an integer.

Accepts plain digits ("42"), word-numbers ("forty-two"), and mixed prose
with embedded digits ("3 hundred"). Multiple arguments are joined with
spaces before parsing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := numword.NormalizeString(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
