// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tanxh33/visualise-dijkstra/builder"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the example graphs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		names, err := builder.Presets()
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tNODES\tEDGES\tROUTE\tDESCRIPTION")
		for _, name := range names {
			p, err := builder.LoadPreset(name)
			if err != nil {
				return err
			}
			labels := p.Labels()
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s → %s\t%s\n",
				p.Name, len(p.Nodes), len(p.Edges), labels[p.Start], labels[p.Finish], p.Description)
		}
		return tw.Flush()
	},
}
