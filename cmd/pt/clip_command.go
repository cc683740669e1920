package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"powertools/internal/clip"
)

func newClipCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clip",
		Short: "Read or write the system clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the clipboard contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := clip.Get()
			if err != nil {
				return fmt.Errorf("read clipboard: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set [TEXT...]",
		Short: "Replace the clipboard contents (reads stdin when no text given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			if err := clip.Set(text); err != nil {
				return fmt.Errorf("write clipboard: %w", err)
			}
			return nil
		},
	})

	return cmd
}
