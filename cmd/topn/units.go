package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unitflow/pipeline"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the supported units and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, u := range pipeline.Units() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-3s %s\n", u, strings.Join(pipeline.Aliases(u), ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
