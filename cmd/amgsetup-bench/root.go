package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amg-kernels/classical/amgsetup"
	"github.com/amg-kernels/classical/csr"
)

// benchFlags holds the pflag-backed configuration for one bench run.
type benchFlags struct {
	theta     float64
	split     string
	interp    string
	maxRowAIR int
	input     string
}

func newRootCmd() *cobra.Command {
	flags := &benchFlags{}

	cmd := &cobra.Command{
		Use:   "amgsetup-bench",
		Short: "Runs one classical Ruge-Stuben AMG setup pass and reports timing and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, flags)
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&flags.theta, "theta", 0.25, "strength-of-connection threshold in [0,1]")
	fs.StringVar(&flags.split, "split", "rs", "splitting algorithm: rs or cljp")
	fs.StringVar(&flags.interp, "interp", "direct", "interpolation method: direct, standard, or air")
	fs.IntVar(&flags.maxRowAIR, "max-row-air", -1, "AIR neighborhood cap; -1 disables the cap")
	fs.StringVar(&flags.input, "input", "", "path to a Matrix Market (.mtx) file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runBench(cmd *cobra.Command, flags *benchFlags) error {
	a, err := readMatrixMarket(flags.input)
	if err != nil {
		return fmt.Errorf("amgsetup-bench: %w", err)
	}

	opts := []amgsetup.Option{
		amgsetup.WithTheta(flags.theta),
		amgsetup.WithDiagnostics(csr.StderrDiagnostics{Tag: "amgsetup-bench"}),
	}

	switch flags.split {
	case "rs":
		opts = append(opts, amgsetup.WithSplitAlgorithm(amgsetup.RS))
	case "cljp":
		opts = append(opts, amgsetup.WithSplitAlgorithm(amgsetup.CLJP))
	default:
		return fmt.Errorf("amgsetup-bench: unknown --split %q", flags.split)
	}

	switch flags.interp {
	case "direct":
		opts = append(opts, amgsetup.WithInterpMethod(amgsetup.Direct))
	case "standard":
		opts = append(opts, amgsetup.WithInterpMethod(amgsetup.Standard))
	case "air":
		opts = append(opts, amgsetup.WithInterpMethod(amgsetup.AIR))
		if flags.maxRowAIR >= 0 {
			opts = append(opts, amgsetup.WithMaxRowAIR(flags.maxRowAIR))
		}
	default:
		return fmt.Errorf("amgsetup-bench: unknown --interp %q", flags.interp)
	}

	start := time.Now()
	result, err := amgsetup.Setup(a, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("amgsetup-bench: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "correlation id: %s\n", result.CorrelationID)
	fmt.Fprintf(out, "n=%d nnz(A)=%d nnz(S)=%d\n", a.N, a.NNZ(), result.Strength.NNZ())
	fmt.Fprintf(out, "c-points=%d f-points=%d\n", len(result.CPoints), a.N-len(result.CPoints))
	if result.P != nil {
		fmt.Fprintf(out, "nnz(P)=%d\n", result.P.NNZ())
	}
	if result.R != nil {
		fmt.Fprintf(out, "nnz(R)=%d\n", result.R.NNZ())
	}
	fmt.Fprintf(out, "elapsed=%s\n", elapsed)

	return nil
}
