package main

import (
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

func newProvidersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List search providers and whether they are enabled",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defer a.close()

			members := a.racer.Members()
			var rows [][]string
			for _, name := range a.registry.Names() {
				p, err := a.registry.Get(name)
				if err != nil {
					continue
				}
				rows = append(rows, []string{
					name,
					strconv.FormatBool(p.Enabled()),
					strconv.FormatBool(slices.Contains(members, name)),
				})
			}
			renderTable(cmd.OutOrStdout(), []string{"Provider", "Enabled", "Racing"}, rows)
			return nil
		},
	}
}
