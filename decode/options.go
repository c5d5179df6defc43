package decode

import (
	"errors"

	"github.com/arloliu/runeword/internal/options"
	"github.com/arloliu/runeword/meter"
	"github.com/arloliu/runeword/width"
)

// Config holds the decoder configuration.
type Config struct {
	table         *width.Table
	schedule      meter.Schedule
	strictTrailer bool
}

func defaultConfig() *Config {
	return &Config{
		table:         width.Default(),
		schedule:      meter.DefaultSchedule(),
		strictTrailer: true,
	}
}

// Option represents a functional option for configuring a Decoder.
type Option = options.Option[*Config]

// WithWidthTable sets the field width table. The default is width.Default().
func WithWidthTable(t *width.Table) Option {
	return options.Named("width table", func(c *Config) error {
		if t == nil {
			return errors.New("nil table")
		}
		c.table = t

		return nil
	})
}

// WithSchedule sets the unit prices used by Measure.
func WithSchedule(s meter.Schedule) Option {
	return options.NoError(func(c *Config) {
		c.schedule = s
	})
}

// WithStrictTrailer controls the overflow check on the digits after the last
// slot. When enabled (the default), a non-zero digit right after the eighth
// slot is read as a ninth width class and rejected with
// ErrAttributeCountOutOfRange. When disabled, the trailer is never inspected.
func WithStrictTrailer(strict bool) Option {
	return options.NoError(func(c *Config) {
		c.strictTrailer = strict
	})
}
