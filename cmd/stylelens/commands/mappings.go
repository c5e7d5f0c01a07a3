package commands

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/csmtools/stylelens/internal/config"
)

// MappingsCommand holds flags for the mappings command.
type MappingsCommand struct {
	configPath string
}

// NewMappingsCommand creates the mappings command, which prints the
// effective rule-to-principle table (default seed plus config overlay).
func NewMappingsCommand() *cobra.Command {
	mc := &MappingsCommand{}

	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "Show the effective rule-to-principle table",
		RunE:  mc.run,
	}

	cmd.Flags().StringVar(&mc.configPath, "config", "", "Config file path (default: .stylelens.yaml in CWD or $HOME)")

	return cmd
}

func (mc *MappingsCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(mc.configPath)
	if err != nil {
		return err
	}

	classifier := cfg.BuildClassifier()

	rules := classifier.RuleIDs()
	sort.Strings(rules)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(cmd.OutOrStdout())
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Checkstyle Rule", "CSM Principle"})

	for _, rule := range rules {
		tbl.AppendRow(table.Row{rule, classifier.Classify(rule)})
	}

	tbl.Render()

	return nil
}
