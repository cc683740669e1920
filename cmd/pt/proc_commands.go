package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"powertools/internal/procs"
)

func newProcessesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ps",
		Short: "List running process names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := procs.Names()
			if err != nil {
				return err
			}

			counts := make(map[string]int, len(names))
			for _, name := range names {
				counts[name]++
			}
			unique := make([]string, 0, len(counts))
			for name := range counts {
				unique = append(unique, name)
			}
			sort.Strings(unique)

			rows := make([][]string, 0, len(unique))
			for _, name := range unique {
				rows = append(rows, []string{name, strconv.Itoa(counts[name])})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Name", "Count"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}

func newKillCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "kill NAME",
		Short: "Terminate the running process whose name best matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !procs.Kill(args[0], nil, ctx.logger(cmd)) {
				return errors.New("no process was terminated")
			}
			return nil
		},
	}
}
