package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/runeword/corpus"
	"github.com/arloliu/runeword/estimate"
)

func (c *cli) newEstimateCmd() *cobra.Command {
	var (
		count   float64
		feature string
		sigmas  float64
	)

	cmd := &cobra.Command{
		Use:   "estimate <golden>",
		Short: "Fit a cost model on a golden file and estimate the cost of a token",
		Long: `Measures every vector of the golden file, fits linear, polynomial and
logarithmic models of cost against the chosen feature and prints them ranked by
R². The best model then estimates the cost at --count, with a budget widened by
--sigmas root mean square errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feat, err := estimate.FeatureFromString(feature)
			if err != nil {
				return err
			}

			f, err := corpus.Load(args[0])
			if err != nil {
				return err
			}
			dec, err := c.decoder()
			if err != nil {
				return err
			}

			result, err := estimate.Analyze(corpus.Samples(dec, f), estimate.WithFeature(feat))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d samples, cost against %s\n", result.Samples, result.Feature)
			for i, m := range result.AllModels {
				fmt.Fprintf(out, "%d. %-12s R²=%.4f RMSE=%.2f %s\n", i+1, m.Type, m.RSquared, m.RMSE, m.Formula)
			}

			best := result.BestFit
			fmt.Fprintf(out, "estimate at %s=%g: %.0f (budget %.0f at %g sigma)\n",
				result.Feature, count, best.Estimator.Estimate(count), best.Bound(count, sigmas), sigmas)

			return nil
		},
	}

	cmd.Flags().Float64Var(&count, "count", 8, "feature value to estimate at")
	cmd.Flags().StringVar(&feature, "feature", "attributes", "feature to fit on: attributes or digits")
	cmd.Flags().Float64Var(&sigmas, "sigmas", 3, "RMSE multiples added to the budget")

	return cmd
}
