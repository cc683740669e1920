package main

import (
	"errors"

	"github.com/spf13/cobra"

	"powertools/internal/fsops"
)

func newMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mv SOURCE DESTINATION",
		Short: "Move a file, creating destination directories as needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, msg := fsops.Move(args[0], args[1])
			if !ok {
				return errors.New(msg)
			}
			ctx.printer(cmd).From("pt", msg)
			return nil
		},
	}
}

func newCopyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cp SOURCE DESTINATION",
		Short: "Copy a file, creating destination directories as needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, msg := fsops.Copy(args[0], args[1])
			if !ok {
				return errors.New(msg)
			}
			ctx.printer(cmd).From("pt", msg)
			return nil
		},
	}
}
