// Package batch decodes many tokens concurrently.
//
// Results come back in input order, one per token. A token that fails to
// decode does not abort the batch; its error is carried in Result.Err.
// Identical tokens are decoded once and share the result.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/runeword/decode"
	"github.com/arloliu/runeword/errs"
	"github.com/arloliu/runeword/internal/hash"
	"github.com/arloliu/runeword/internal/options"
)

// Result is the outcome of decoding one token of a batch.
type Result struct {
	Index int
	Token string
	Item  decode.Item
	Err   error
}

// Config holds batch settings.
type Config struct {
	workers int
	logger  *zap.Logger
}

// Option configures a batch run.
type Option = options.Option[*Config]

// WithWorkers bounds the number of concurrent decodes. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return options.Named("workers", func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("want at least 1 worker, got %d", n)
		}
		c.workers = n

		return nil
	})
}

// WithLogger sets the logger used for per-token failure diagnostics.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	})
}

// job is one distinct token and the input positions it occupies.
type job struct {
	token   string
	indexes []int
	done    bool
}

// Decode decodes tokens with dec.
//
// Parameters:
//   - ctx: Cancellation stops scheduling new decodes
//   - dec: Decoder shared by all workers
//   - tokens: Tokens to decode
//   - opts: Optional configuration (WithWorkers, WithLogger)
//
// Returns:
//   - []Result: One result per token, in input order. Tokens left undecoded
//     after cancellation carry the context error.
//   - error: Option error, or the context error if the batch was cut short
func Decode(ctx context.Context, dec *decode.Decoder, tokens []string, opts ...Option) ([]Result, error) {
	cfg := &Config{
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	results := make([]Result, len(tokens))
	for i, tok := range tokens {
		results[i] = Result{Index: i, Token: tok}
	}

	jobs := group(tokens)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			item, err := dec.Decode(j.token)
			if err != nil {
				cfg.logger.Debug("decode failed",
					zap.Int("index", j.indexes[0]),
					zap.String("code", errs.Code(err)),
					zap.Error(err))
			}
			for _, idx := range j.indexes {
				results[idx].Item = item
				results[idx].Err = err
			}
			j.done = true

			return nil
		})
	}

	waitErr := g.Wait()

	failed, skipped := 0, 0
	for _, j := range jobs {
		if j.done {
			if results[j.indexes[0]].Err != nil {
				failed += len(j.indexes)
			}

			continue
		}
		skipped += len(j.indexes)
	}

	var err error
	if skipped > 0 {
		err = waitErr
		if err == nil {
			err = ctx.Err()
		}
		for _, j := range jobs {
			if j.done {
				continue
			}
			for _, idx := range j.indexes {
				results[idx].Err = err
			}
		}
	}

	cfg.logger.Debug("batch decoded",
		zap.Int("tokens", len(tokens)),
		zap.Int("unique", len(jobs)),
		zap.Int("failed", failed),
		zap.Int("skipped", skipped))

	if err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}

	return results, nil
}

// group collapses repeated tokens into one job each, keeping first-seen order.
// Tokens are keyed by hash.ID; distinct tokens sharing an id get separate jobs.
func group(tokens []string) []*job {
	jobs := make([]*job, 0, len(tokens))
	byID := make(map[uint64][]*job, len(tokens))

	for i, tok := range tokens {
		id := hash.ID(tok)

		var found *job
		for _, j := range byID[id] {
			if j.token == tok {
				found = j
				break
			}
		}
		if found == nil {
			found = &job{token: tok}
			byID[id] = append(byID[id], found)
			jobs = append(jobs, found)
		}
		found.indexes = append(found.indexes, i)
	}

	return jobs
}
