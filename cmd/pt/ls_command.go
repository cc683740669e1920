package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/spf13/cobra"

	"powertools/internal/fsops"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var levels int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ls [PATH]",
		Short: "List a directory tree to a bounded depth",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			result := fsops.EnumerateDirectory(path, levels)
			if msgs, ok := result["error"]; ok && len(msgs) > 0 {
				if msg, ok := msgs[0].(string); ok {
					return errors.New(msg)
				}
				return fmt.Errorf("enumerate %s failed", path)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			lw := list.NewWriter()
			lw.SetStyle(list.StyleConnectedLight)
			for root, entries := range result {
				lw.AppendItem(root)
				lw.Indent()
				appendTreeItems(lw, entries)
				lw.UnIndent()
			}
			fmt.Fprintln(cmd.OutOrStdout(), lw.Render())
			return nil
		},
	}

	cmd.Flags().IntVarP(&levels, "levels", "l", 1, "How many directory levels to descend")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the tree as JSON")
	return cmd
}

func appendTreeItems(lw list.Writer, entries []any) {
	for _, entry := range entries {
		switch e := entry.(type) {
		case string:
			lw.AppendItem(e)
		case map[string][]any:
			for name, children := range e {
				lw.AppendItem(name + "/")
				lw.Indent()
				appendTreeItems(lw, children)
				lw.UnIndent()
			}
		}
	}
}
