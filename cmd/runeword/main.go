// Command runeword decodes item tokens and checks decoder cost against golden files.
//
// Usage:
//
//	runeword decode 1003000010120010152002003...
//	runeword decode --file tokens.txt
//	runeword inspect 1003000010120010152002003...
//	runeword verify corpus/testdata/golden.yaml
//	runeword record corpus/testdata/golden.yaml --out golden.yaml.zst --margin 10
//	runeword estimate corpus/testdata/golden.yaml --count 8
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/runeword/decode"
	"github.com/arloliu/runeword/internal/logging"
	"github.com/arloliu/runeword/width"
)

// cli holds the state shared by all subcommands.
type cli struct {
	tablePath string
	verbose   bool
	logger    *zap.Logger
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A nil logger is built from --verbose
// before any subcommand runs.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	c := &cli{logger: logger}

	root := &cobra.Command{
		Use:   "runeword",
		Short: "Decode item tokens and meter the cost of decoding",
		Long: `runeword decodes decimal item tokens into structured item records.

A token carries a header (magic marker, item id, type code), eight attribute
slots and an opaque trailer. Every decode is metered; golden files record the
expected record and the highest accepted cost of known tokens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				return nil
			}

			var err error
			c.logger, err = logging.New(c.verbose)

			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.tablePath, "table", "", "width table file (.toml or .yaml); built-in table if empty")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.newDecodeCmd(),
		c.newInspectCmd(),
		c.newVerifyCmd(),
		c.newRecordCmd(),
		c.newEstimateCmd(),
	)

	return root
}

// decoder builds a Decoder for the --table flag.
func (c *cli) decoder() (*decode.Decoder, error) {
	var opts []decode.Option
	if c.tablePath != "" {
		t, err := width.Load(c.tablePath)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("loaded width table",
			zap.String("path", c.tablePath),
			zap.Uint64("fingerprint", t.Fingerprint()))
		opts = append(opts, decode.WithWidthTable(t))
	}

	return decode.New(opts...)
}
