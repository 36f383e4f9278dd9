package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/avandyck/raydemos/pkg/montecarlo"
)

var piFlags struct {
	samples int64
	batches int
	lanes   int
	seed    int64
}

var piCmd = &cobra.Command{
	Use:   "pi",
	Short: "Estimate π by Monte Carlo sampling",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("samples") {
			piFlags.samples = cfg.Pi.Samples
		}
		if !cmd.Flags().Changed("batches") {
			piFlags.batches = cfg.Pi.Batches
		}
		if !cmd.Flags().Changed("lanes") {
			piFlags.lanes = cfg.Pi.Lanes
		}
		if !cmd.Flags().Changed("seed") {
			piFlags.seed = cfg.Pi.Seed
		}

		est := montecarlo.Estimator{
			Samples: piFlags.samples,
			Lanes:   piFlags.lanes,
			Seed:    piFlags.seed,
		}

		start := time.Now()
		result, err := est.RunBatches(piFlags.batches)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Printf("π ≈ %.8f (error %.2e) after %d×%d samples in %v\n",
			result.Mean, math.Abs(result.Mean-math.Pi), piFlags.batches, piFlags.samples, elapsed)
		if piFlags.batches > 1 {
			fmt.Printf("Batch spread: σ = %.2e\n", result.StdDev)
		}
		return nil
	},
}

func init() {
	piCmd.Flags().Int64Var(&piFlags.samples, "samples", 0, "samples per batch")
	piCmd.Flags().IntVar(&piFlags.batches, "batches", 0, "independent batches to run")
	piCmd.Flags().IntVar(&piFlags.lanes, "lanes", 0, "parallel lanes (0 = one per CPU)")
	piCmd.Flags().Int64Var(&piFlags.seed, "seed", 0, "base PRNG seed")
}
