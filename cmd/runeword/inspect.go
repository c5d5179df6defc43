package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/runeword/errs"
)

func (c *cli) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <token>",
		Short: "Print the field layout and metered cost of a token",
		Long: `Prints every field read while decoding the token with its slot, offset,
width and value, followed by the cost breakdown. On failure the fields read
before the error are still printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := c.decoder()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			layout, inspectErr := dec.Inspect(args[0])
			fmt.Fprint(out, layout)

			_, report, _ := dec.Measure(args[0])
			fmt.Fprintf(out, "cost %s\n", report)

			if inspectErr != nil {
				return fmt.Errorf("%s: %w", errs.Code(inspectErr), inspectErr)
			}

			return nil
		},
	}
}
