// Package decode turns item tokens into structured item records.
//
// A token is a string of decimal digits: a fixed header (magic marker, item
// id, type code) followed by eight attribute slots and an opaque trailer.
// Field boundaries are not self-describing; they come from a width.Table.
//
// Decoding is a pure function of the token and the table. The Decoder holds
// no mutable state, never logs and is safe for concurrent use:
//
//	dec, err := decode.New()
//	if err != nil {
//	    return err
//	}
//	item, err := dec.Decode(token)
//
// Measure returns the same record together with the metered cost of the
// call, and Inspect returns the position of every field for diagnostics.
package decode

import (
	"fmt"

	"github.com/arloliu/runeword/cursor"
	"github.com/arloliu/runeword/errs"
	"github.com/arloliu/runeword/internal/options"
	"github.com/arloliu/runeword/meter"
	"github.com/arloliu/runeword/width"
)

// Decoder decodes tokens under a fixed width table.
type Decoder struct {
	table         *width.Table
	schedule      meter.Schedule
	strictTrailer bool
}

// New creates a Decoder.
//
// Parameters:
//   - opts: Optional configuration (WithWidthTable, WithSchedule, WithStrictTrailer)
//
// Returns:
//   - *Decoder: The decoder
//   - error: Option validation error
func New(opts ...Option) (*Decoder, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return &Decoder{
		table:         cfg.table,
		schedule:      cfg.schedule,
		strictTrailer: cfg.strictTrailer,
	}, nil
}

// Table returns the width table used by the decoder.
func (d *Decoder) Table() *width.Table {
	return d.table
}

// Schedule returns the unit prices used by Measure.
func (d *Decoder) Schedule() meter.Schedule {
	return d.schedule
}

// Decode decodes a token into an Item.
//
// On error the returned Item is zero; no partial record is ever produced.
//
// Returns:
//   - Item: The decoded record
//   - error: ErrInvalidToken, ErrMalformedHeader, ErrAttributeCountOutOfRange,
//     ErrCursorExhausted or ErrUnsupportedAttributeEncoding, wrapped with context
func (d *Decoder) Decode(token string) (Item, error) {
	return d.run(token, meter.Nop{}, nil)
}

// Measure decodes a token and reports the metered cost of the call.
// The report is valid on error too and covers the work done up to the failure.
func (d *Decoder) Measure(token string) (Item, meter.Report, error) {
	counter := meter.NewCounter(d.schedule)
	item, err := d.run(token, counter, nil)

	return item, counter.Report(), err
}

// Inspect decodes a token and returns the position of every field read.
//
// On error the layout holds the spans read before the failure and a zero Item.
func (d *Decoder) Inspect(token string) (Layout, error) {
	var lay Layout
	item, err := d.run(token, meter.Nop{}, &lay)
	lay.Item = item

	return lay, err
}

func (d *Decoder) run(token string, m meter.Meter, trace *Layout) (Item, error) {
	m.Charge(meter.OpCall, 1)

	if err := d.checkShape(token, m); err != nil {
		return Item{}, err
	}

	r := &reader{c: cursor.New(token, m), t: d.table, m: m, trace: trace}

	h, err := r.readHeader()
	if err != nil {
		return Item{}, err
	}

	slots, count, mode, err := r.decodeSlots()
	if trace != nil {
		trace.Mode = mode
	}
	if err != nil {
		return Item{}, err
	}
	h.AttributeCount = count
	// the slot loop caps count at section.MaxSlots; this guards the header
	// invariant should the slot layout ever carry more positions
	if err := h.ValidateCount(); err != nil {
		return Item{}, err
	}

	if trace != nil {
		trace.Trailer = r.c.Rest()
	}
	if d.strictTrailer {
		if err := r.checkOverflow(count); err != nil {
			return Item{}, err
		}
	}

	return assemble(token, h, slots), nil
}

// checkShape rejects empty tokens, non-digit characters and tokens too short
// to hold the header.
func (d *Decoder) checkShape(token string, m meter.Meter) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", errs.ErrInvalidToken)
	}

	m.Charge(meter.OpScan, len(token))
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return fmt.Errorf("%w: non-digit %q at offset %d", errs.ErrInvalidToken, token[i], i)
		}
	}

	if span := d.table.HeaderSpan(); len(token) < span {
		return fmt.Errorf("%w: token has %d digits, header needs %d", errs.ErrMalformedHeader, len(token), span)
	}

	return nil
}
