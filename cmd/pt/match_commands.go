package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"powertools/internal/textmatch"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "match TARGET OPTION...",
		Short: "Find the option closest in spelling to the target",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target, options := args[0], args[1:]
			best, ok := textmatch.BestMatchCutoff(target, options, cfg.Match.Cutoff)
			if !ok {
				return fmt.Errorf("no option scored at least %v against %q", cfg.Match.Cutoff, target)
			}
			fmt.Fprintln(cmd.OutOrStdout(), best)
			return nil
		},
	}
}

func newPhoneticCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "phonetic WORD [OPTION...]",
		Short: "Print a word's phonetic code, or match it against options by sound",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), textmatch.PhoneticCode(args[0]))
				return nil
			}

			target, options := args[0], args[1:]
			best, ok := textmatch.BestPhoneticMatch(target, options)
			if !ok {
				return fmt.Errorf("no option sounds close enough to %q", target)
			}
			fmt.Fprintln(cmd.OutOrStdout(), best)
			return nil
		},
	}
}
