package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/runeword/batch"
	"github.com/arloliu/runeword/corpus"
	"github.com/arloliu/runeword/errs"
)

// decodeFailure is the JSON line printed for a token that failed to decode.
type decodeFailure struct {
	Token string `json:"token"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (c *cli) newDecodeCmd() *cobra.Command {
	var (
		file    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "decode [token...]",
		Short: "Decode tokens and print one JSON record per line",
		Long: `Decodes every token given as an argument or listed in --file (one token
per line, blank lines and lines starting with # skipped). Records are printed
in input order. A token that fails prints its reason code instead, and the
command exits non-zero if any token failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := args
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read tokens: %w", err)
				}
				tokens = append(tokens, corpus.Tokens(data)...)
			}
			if len(tokens) == 0 {
				return errors.New("no tokens given")
			}

			dec, err := c.decoder()
			if err != nil {
				return err
			}

			opts := []batch.Option{batch.WithLogger(c.logger)}
			if workers > 0 {
				opts = append(opts, batch.WithWorkers(workers))
			}
			results, err := batch.Decode(cmd.Context(), dec, tokens, opts...)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			var failed []string
			for _, r := range results {
				if r.Err != nil {
					code := errs.Code(r.Err)
					failed = append(failed, code)
					err = enc.Encode(decodeFailure{Token: r.Token, Code: code, Error: r.Err.Error()})
				} else {
					err = enc.Encode(r.Item)
				}
				if err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d of %d tokens failed to decode, first reason: %s", len(failed), len(tokens), failed[0])
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one token per line")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent decodes (default GOMAXPROCS)")

	return cmd
}
