// Package runeword decodes item tokens into structured item records and meters
// the cost of doing so.
//
// A token is a string of decimal digits laid out as:
//
//	magic(4) item(5) type(2) slot×8 trailer
//	slot = class(1) type(3) value(width of class)
//
// Slots fill from the front. An empty slot is seven zero digits, and once a
// slot is empty every later slot must be empty too. The first slot whose type
// is the sentinel 999 switches all later slots to the extended width classes.
//
// # Core Features
//
//   - Pure, deterministic decoding with typed, wrapped sentinel errors (package errs)
//   - Configurable field widths through TOML or YAML width tables (package width)
//   - Metered cost per decode call with a fixed unit schedule (package meter)
//   - Field-by-field layout for diagnostics (Decoder.Inspect)
//   - Concurrent, memoised batch decoding (package batch)
//   - Golden files with cost ceilings and a cost model fitted on them (packages corpus, estimate)
//
// # Basic Usage
//
//	item, err := runeword.Decode(token)
//	if errors.Is(err, errs.ErrAttributeCountOutOfRange) {
//	    // reject the token
//	}
//	for typeID, value := range item.Attributes() {
//	    fmt.Printf("attribute %d = %d\n", typeID, value)
//	}
//
// Measuring the cost of a call:
//
//	item, report, err := runeword.Measure(token)
//	fmt.Println(report) // total=21309 call=1x21000 scan=78x1 ...
//
// # Package Structure
//
// This package wraps a decode.Decoder built with the default width table and
// cost schedule. Use NewDecoder, or the decode package directly, for custom
// tables and schedules.
package runeword

import (
	"context"

	"github.com/arloliu/runeword/batch"
	"github.com/arloliu/runeword/decode"
	"github.com/arloliu/runeword/internal/hash"
	"github.com/arloliu/runeword/meter"
)

// Item is a decoded item record.
type Item = decode.Item

// Layout is the field-by-field breakdown of a token.
type Layout = decode.Layout

var defaultDecoder = func() *decode.Decoder {
	dec, err := decode.New()
	if err != nil {
		panic(err)
	}

	return dec
}()

// NewDecoder creates a decoder.
//
// Available options:
//   - decode.WithWidthTable(t) for a custom width table, see width.Load
//   - decode.WithSchedule(s) for custom unit prices
//   - decode.WithStrictTrailer(false) to skip the ninth attribute check
//
// Example:
//
//	table, err := width.Load("widths.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dec, err := runeword.NewDecoder(decode.WithWidthTable(table))
func NewDecoder(opts ...decode.Option) (*decode.Decoder, error) {
	return decode.New(opts...)
}

// Decode decodes a token with the default decoder.
//
// Parameters:
//   - token: Decimal digit string
//
// Returns:
//   - Item: The decoded record, zero on error
//   - error: A wrapped errs sentinel describing why the token was rejected
func Decode(token string) (Item, error) {
	return defaultDecoder.Decode(token)
}

// Measure decodes a token with the default decoder and reports the metered
// cost. The report is valid even when decoding fails.
func Measure(token string) (Item, meter.Report, error) {
	return defaultDecoder.Measure(token)
}

// Inspect decodes a token with the default decoder and returns its layout.
func Inspect(token string) (Layout, error) {
	return defaultDecoder.Inspect(token)
}

// DecodeAll decodes tokens concurrently with the default decoder.
// Results are in input order; per-token errors are in Result.Err.
func DecodeAll(ctx context.Context, tokens []string, opts ...batch.Option) ([]batch.Result, error) {
	return batch.Decode(ctx, defaultDecoder, tokens, opts...)
}

// TokenID returns the 64-bit xxHash of a token, the key batch decoding
// memoises results under.
func TokenID(token string) uint64 {
	return hash.ID(token)
}
