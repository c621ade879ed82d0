package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/askroute/pkg/types"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var maxResults int
	var smart bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Query the search providers and print the hits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defer a.close()

			query := strings.Join(args, " ")
			var hits []types.Hit
			if smart {
				hits = a.router.SmartSearch(cmd.Context(), query)
			} else {
				hits = a.router.UnifiedSearch(cmd.Context(), query, maxResults)
			}

			out := cmd.OutOrStdout()
			if len(hits) == 0 {
				fmt.Fprintln(out, "No results.")
				return nil
			}
			renderTable(out, []string{"Provider", "Title", "URL"}, hitRows(hits))
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxResults, "max", "n", 0, "Results per provider (default from config)")
	cmd.Flags().BoolVar(&smart, "smart", false, "Use the configured routing mode instead of querying every provider")
	return cmd
}
