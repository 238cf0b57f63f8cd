package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/executor"
	"github.com/exascience/pstl/lanes"
	"github.com/exascience/pstl/policy"
)

func newCapsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "Print the detected SIMD level and the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			c := config.Default()
			fmt.Fprintf(w, "simd:             %s\n", lanes.Describe())
			fmt.Fprintf(w, "lanes (int64):    %d\n", lanes.Of[int64]())
			fmt.Fprintf(w, "l1 data cache:    %d bytes\n", config.L1DataCache())
			fmt.Fprintf(w, "workers:          %d\n", c.Workers)
			fmt.Fprintf(w, "executor:         %d workers\n", executor.Default().Concurrency())
			fmt.Fprintf(w, "grain (int64):    %d\n", c.GrainFor(8))
			fmt.Fprintf(w, "slack:            %d\n", c.Slack)
			fmt.Fprintf(w, "cutoffs:          sort %d, merge %d, set %d, partition %d\n",
				c.SortCutoff, c.MergeCutoff, c.SetCutoff, c.PartitionCutoff)
			fmt.Fprintf(w, "scratch limit:    %d bytes\n", c.ScratchLimit)
			for _, p := range policy.All {
				fmt.Fprintf(w, "policy %-9s  %s\n", p.String()+":", p.Select(policy.RandomAccess))
			}
			return nil
		},
	}
}
