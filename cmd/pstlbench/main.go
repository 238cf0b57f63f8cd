// Command pstlbench runs the algorithms of pstl/pattern on random input
// under every execution policy, checks that all policies agree with the
// sequential one, and prints the timings.
//
// Usage:
//
//	pstlbench run --algo sort --n 10000000 --policy all
//	pstlbench run --algo all --n 100000 --threshold 4
//	pstlbench caps
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/exascience/pstl/config"
)

var (
	verbose      bool
	workers      int
	scratchLimit int64
	noSIMD       bool
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pstlbench",
		Short:         "Time and cross-check the parallel algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			config.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			c := config.Default()
			if cmd.Flags().Changed("workers") {
				c.Workers = workers
			}
			if cmd.Flags().Changed("scratch-limit") {
				c.ScratchLimit = scratchLimit
			}
			if cmd.Flags().Changed("no-simd") {
				c.NoSIMD = noSIMD
			}
			config.Set(c)
		},
	}
	registerGlobalFlags(root.PersistentFlags())
	root.AddCommand(newRunCommand(), newCapsCommand())
	return root
}

func registerGlobalFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&verbose, "verbose", "v", false, "log fallbacks to serial execution")
	flags.IntVar(&workers, "workers", 0, "number of workers (default from PSTL_NUM_WORKERS or GOMAXPROCS)")
	flags.Int64Var(&scratchLimit, "scratch-limit", 0, "scratch memory budget in bytes, 0 for unlimited")
	flags.BoolVar(&noSIMD, "no-simd", false, "disable vectorized bricks")
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
