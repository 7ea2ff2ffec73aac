package cmd

import (
	"github.com/fp4php/functional-collection/plugin/refine"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"strings"
)

var FamiliesCmd = &cobra.Command{
	Use:          "families",
	Short:        "List the collection families whose filters get refined",
	RunE:         runFamilies,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func runFamilies(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Family", "Kind", "Refined methods"})
	table.SetAutoWrapText(false)
	for _, f := range refine.Families {
		table.Append([]string{f.Name, f.Kind.String(), strings.Join(refine.RefinableMethods(f.Name), ", ")})
	}
	table.Render()
	return nil
}
