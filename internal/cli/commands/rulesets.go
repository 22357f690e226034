package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lintwire-labs/lintwire/internal/annotate"
	"github.com/lintwire-labs/lintwire/pkg/dialect"
)

// NewRuleSetsCommand creates the rulesets command.
func NewRuleSetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rulesets",
		Short: "Show configured rule sets and which dialects they apply to",
		Long: `List the configured rule sets and, per known dialect, whether the
rule set would run for files of that dialect.

Applicability uses the same substring matching as annotation passes, so
this is the place to spot identifiers that accidentally match (or miss)
a dialect.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFrom(cmd.Context())
			if cfg == nil {
				return fmt.Errorf("configuration not loaded")
			}

			dialects := dialect.List()

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			header := table.Row{"Rule Set"}
			for _, id := range dialects {
				header = append(header, id)
			}
			t.AppendHeader(header)

			applicable := make(map[string]map[string]bool, len(dialects))
			for _, id := range dialects {
				applicable[id] = make(map[string]bool)
				for _, rs := range annotate.ApplicableRuleSets(cfg.RuleSets, id) {
					applicable[id][rs] = true
				}
			}

			for _, rs := range cfg.RuleSets {
				row := table.Row{rs}
				for _, id := range dialects {
					mark := ""
					if applicable[id][rs] {
						mark = "yes"
					}
					row = append(row, mark)
				}
				t.AppendRow(row)
			}

			t.Render()
			return nil
		},
	}
}
