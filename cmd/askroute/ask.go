package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCommand(ctx *commandContext) *cobra.Command {
	var docPath string
	var showStats bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defer a.close()

			if docPath != "" {
				if err := loadDocument(a, docPath); err != nil {
					return err
				}
			}

			answer := a.engine.Answer(cmd.Context(), strings.Join(args, " "))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, answer)

			if showStats {
				fmt.Fprintln(out)
				renderTable(out, statsHeaders(), statsRows(a.engine.ProviderStats()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&docPath, "doc", "", "Plain-text document to answer from")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print provider statistics after the answer")
	return cmd
}
