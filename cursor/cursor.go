// Package cursor reads fixed-width unsigned integers from a decimal digit string.
//
// A Cursor has a single primitive, Read(n), which consumes the next n digits,
// most significant first, and returns their value. The position only moves
// forward; no digit is ever read twice. The cursor has no knowledge of what
// the fields mean: field boundaries come from the caller's width table.
package cursor

import (
	"fmt"

	"github.com/arloliu/runeword/errs"
	"github.com/arloliu/runeword/meter"
)

// MaxWidth is the widest field that fits in a uint64 without overflow.
const MaxWidth = 19

// Cursor is a forward-only reader over a digit string.
//
// The input is expected to contain ASCII digits only; shape validation is the
// caller's responsibility.
//
// Note: Cursor is NOT thread-safe.
type Cursor struct {
	digits string
	pos    int
	meter  meter.Meter
}

// New creates a cursor at the start of digits. A nil meter disables charging.
func New(digits string, m meter.Meter) *Cursor {
	if m == nil {
		m = meter.Nop{}
	}

	return &Cursor{digits: digits, meter: m}
}

// Read consumes exactly n digits and returns their unsigned value.
//
// Parameters:
//   - n: Number of digits to consume (1..MaxWidth)
//
// Returns:
//   - uint64: Value of the consumed digits
//   - error: ErrInvalidWidth for n outside 1..MaxWidth, ErrCursorExhausted if
//     fewer than n digits remain. The cursor does not move on error.
func (c *Cursor) Read(n int) (uint64, error) {
	if n < 1 || n > MaxWidth {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidWidth, n)
	}
	if n > c.Remaining() {
		return 0, fmt.Errorf("%w: need %d digits at offset %d, %d remain",
			errs.ErrCursorExhausted, n, c.pos, c.Remaining())
	}

	var v uint64
	for i := c.pos; i < c.pos+n; i++ {
		v = v*10 + uint64(c.digits[i]-'0')
	}
	c.pos += n

	c.meter.Charge(meter.OpRead, 1)
	c.meter.Charge(meter.OpDigit, n)

	return v, nil
}

// Remaining returns the number of unread digits.
func (c *Cursor) Remaining() int {
	return len(c.digits) - c.pos
}

// Offset returns the index of the next unread digit.
func (c *Cursor) Offset() int {
	return c.pos
}

// Rest returns the unread digits without consuming them.
func (c *Cursor) Rest() string {
	return c.digits[c.pos:]
}
