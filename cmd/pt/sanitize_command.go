package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"powertools/internal/sanitize"
)

func newSanitizeCommand(ctx *commandContext) *cobra.Command {
	var keywords []string

	cmd := &cobra.Command{
		Use:   "sanitize TEXT...",
		Short: "Reject text containing dangerous shell/code patterns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			extra := append(append([]string(nil), cfg.Sanitize.ExtraKeywords...), keywords...)
			clean, diag := sanitize.Sanitize(strings.Join(args, " "), extra...)
			if diag != "" {
				return fmt.Errorf("%s", diag)
			}
			fmt.Fprintln(cmd.OutOrStdout(), clean)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "Extra keyword to block (repeatable)")
	return cmd
}
