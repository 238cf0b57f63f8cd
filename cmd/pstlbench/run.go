package main

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/exascience/pstl"
	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/policy"
)

type runOptions struct {
	algos     []string
	policies  []string
	n         int
	seed      int64
	threshold int
	rounds    int
}

func newRunCommand() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run algorithms under each policy and compare the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	opts.register(cmd.Flags())
	return cmd
}

func (opts *runOptions) register(flags *pflag.FlagSet) {
	flags.StringSliceVar(&opts.algos, "algo", []string{"all"}, "algorithms to run, or all")
	flags.StringSliceVar(&opts.policies, "policy", []string{"all"}, "policies to run under (seq, unseq, par, par_unseq), or all")
	flags.IntVar(&opts.n, "n", 1_000_000, "input size")
	flags.Int64Var(&opts.seed, "seed", 1, "random seed")
	flags.IntVar(&opts.threshold, "threshold", 0, "grain designator, see pstl.ComputeEffectiveThreshold; 0 lets every algorithm choose")
	flags.IntVar(&opts.rounds, "rounds", 3, "timed rounds per algorithm and policy, the best one is reported")
}

func selectAlgorithms(names []string) ([]algorithm, error) {
	if slices.Contains(names, "all") {
		return algorithms, nil
	}
	byName := lo.KeyBy(algorithms, func(a algorithm) string { return a.name })
	result := make([]algorithm, 0, len(names))
	for _, name := range names {
		a, ok := byName[name]
		if !ok {
			known := lo.Map(algorithms, func(a algorithm, _ int) string { return a.name })
			return nil, fmt.Errorf("unknown algorithm %q, known: %s", name, strings.Join(known, ", "))
		}
		result = append(result, a)
	}
	return result, nil
}

func selectPolicies(names []string, grain int) ([]policy.Policy, error) {
	var result []policy.Policy
	if slices.Contains(names, "all") {
		result = slices.Clone(policy.All)
	} else {
		for _, name := range names {
			p, err := policy.Parse(name)
			if err != nil {
				return nil, err
			}
			result = append(result, p)
		}
	}
	return lo.Map(result, func(p policy.Policy, _ int) policy.Policy { return p.WithGrain(grain) }), nil
}

func newInput(n int, seed int64) input {
	r := rand.New(rand.NewSource(seed))
	random := func(int) int { return r.Intn(n) }
	in := input{s: lo.Times(n, random), a: lo.Times(n/2, random), b: lo.Times(n/2, random)}
	slices.Sort(in.a)
	slices.Sort(in.b)
	return in
}

func run(cmd *cobra.Command, opts runOptions) error {
	if opts.n < 16 {
		return fmt.Errorf("input size %d too small, need at least 16", opts.n)
	}
	algos, err := selectAlgorithms(opts.algos)
	if err != nil {
		return err
	}
	grain := 0
	if opts.threshold != 0 {
		grain = pstl.ComputeEffectiveThreshold(0, opts.n, opts.threshold)
	}
	policies, err := selectPolicies(opts.policies, grain)
	if err != nil {
		return err
	}
	log := config.Logger()
	log.Info("generating input", "n", opts.n, "seed", opts.seed)
	in := newInput(opts.n, opts.seed)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "algorithm\t%s\t\n", strings.Join(lo.Map(policies, func(p policy.Policy, _ int) string { return p.String() }), "\t"))
	var failed []string
	for _, a := range algos {
		want := a.run(policy.Seq, in)
		row := []string{a.name}
		for _, p := range policies {
			best := time.Duration(0)
			for round := 0; round < max(opts.rounds, 1); round++ {
				start := time.Now()
				got := a.run(p, in)
				elapsed := time.Since(start)
				if !slices.Equal(want, got) {
					log.Error("result differs from sequential execution", "algorithm", a.name, "policy", p)
					failed = append(failed, a.name+"/"+p.String())
					break
				}
				if best == 0 || elapsed < best {
					best = elapsed
				}
			}
			row = append(row, best.Round(time.Microsecond).String())
		}
		fmt.Fprintf(w, "%s\t\n", strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d mismatches: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}
