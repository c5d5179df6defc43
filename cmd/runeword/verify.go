package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/runeword/corpus"
	"github.com/arloliu/runeword/errs"
)

func (c *cli) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <golden>",
		Short: "Check the decoder against a golden file",
		Long: `Decodes every vector of the golden file, compares the record with the
expected one and the metered cost with the recorded ceilings. Prints one line
per vector and the cumulative cost; exits non-zero on any failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := corpus.Load(args[0])
			if err != nil {
				return err
			}
			dec, err := c.decoder()
			if err != nil {
				return err
			}

			r := corpus.Verify(dec, f)
			if r.FingerprintMismatch {
				c.logger.Warn("golden file was recorded under a different width table",
					zap.Uint64("recorded", f.TableFingerprint),
					zap.Uint64("current", dec.Table().Fingerprint()))
			}

			if r.IDCollision {
				c.logger.Warn("golden file has distinct tokens sharing a token id; batch results fall back to token comparison")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-28s %8s %8s %s\n", "VECTOR", "COST", "CEILING", "STATUS")
			for _, o := range r.Outcomes {
				status := "ok"
				if o.Err != nil {
					status = errs.Code(o.Err)
					c.logger.Debug("vector failed", zap.String("vector", o.Name), zap.Error(o.Err))
				}
				fmt.Fprintf(out, "%-28s %8d %8d %s\n", o.Name, o.Cost, o.Ceiling, status)
			}
			fmt.Fprintf(out, "total %d, ceiling %d, %d/%d vectors passed\n",
				r.Total, r.TotalCeiling, len(r.Outcomes)-len(r.Failed()), len(r.Outcomes))

			return r.Joined()
		},
	}
}

func (c *cli) newRecordCmd() *cobra.Command {
	var (
		out    string
		margin float64
	)

	cmd := &cobra.Command{
		Use:   "record <golden>",
		Short: "Re-measure a golden file and write fresh cost ceilings",
		Long: `Measures every vector of the golden file and writes a copy whose ceilings
are the measured costs plus --margin percent. The expected records must still
match. The output is compressed when --out ends in .zst, .s2 or .lz4.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}

			f, err := corpus.Load(args[0])
			if err != nil {
				return err
			}
			dec, err := c.decoder()
			if err != nil {
				return err
			}

			recorded, err := corpus.Record(dec, f, margin)
			if err != nil {
				return err
			}
			stats, err := corpus.Save(out, recorded)
			if err != nil {
				return err
			}

			c.logger.Info("recorded golden file",
				zap.String("path", out),
				zap.Stringer("compression", stats.Algorithm),
				zap.Int("bytes", stats.CompressedSize))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d vectors to %s, total ceiling %d (%d bytes, %.1f%% saved)\n",
				len(recorded.Vectors), out, recorded.TotalCeiling, stats.CompressedSize, stats.SpaceSavings())

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output golden file")
	cmd.Flags().Float64Var(&margin, "margin", 10, "headroom added to each measured cost, in percent")

	return cmd
}
