package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"powertools/internal/summarize"
)

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var sentences int
	var algorithm string

	cmd := &cobra.Command{
		Use:   "summarize [FILE]",
		Short: "Extract the main idea of a passage (reads stdin without a file)",
		Long: `Extract the top sentences of an English passage.

Available algorithms: ` + strings.Join(summarize.Algorithms(), ", ") + `.
Defaults come from the [summary] section of the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if sentences == 0 {
				sentences = cfg.Summary.Sentences
			}
			if algorithm == "" {
				algorithm = cfg.Summary.Algorithm
			}

			var passage string
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read passage: %w", err)
				}
				passage = string(data)
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				passage = string(data)
			}

			summary, err := summarize.MainIdea(passage, sentences, algorithm)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().IntVarP(&sentences, "sentences", "n", 0, "Number of sentences to extract (default from config)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Summarizer to use (default from config)")
	return cmd
}
