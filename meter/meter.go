// Package meter accounts for the computation cost of a decode call.
//
// The host environment that runs the decoder charges a measurable cost per
// call. This package models that cost as an abstract unit count: every
// primitive operation of the decoder is charged to a Meter at the unit price
// given by a Schedule. Costs are deterministic for a given token and table,
// which makes them usable as a non-regression signal in tests.
package meter

import (
	"fmt"
	"strings"
)

// Op identifies a chargeable decoder operation.
type Op uint8

const (
	OpCall       Op = iota // OpCall is the flat per-call charge.
	OpScan                 // OpScan is charged once per token digit during shape validation.
	OpRead                 // OpRead is charged once per cursor read.
	OpDigit                // OpDigit is charged once per digit consumed by a cursor read.
	OpSlot                 // OpSlot is charged once per attribute slot visited.
	OpStore                // OpStore is charged once per present attribute stored.
	OpModeSwitch           // OpModeSwitch is charged when the sentinel regime is entered.

	numOps
)

var opNames = [numOps]string{
	OpCall:       "call",
	OpScan:       "scan",
	OpRead:       "read",
	OpDigit:      "digit",
	OpSlot:       "slot",
	OpStore:      "store",
	OpModeSwitch: "mode_switch",
}

func (o Op) String() string {
	if o < numOps {
		return opNames[o]
	}

	return "unknown"
}

// Ops returns all chargeable operations in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, numOps)
	for o := range numOps {
		ops = append(ops, o)
	}

	return ops
}

// Schedule is the unit price of each operation.
type Schedule [numOps]uint64

// DefaultSchedule returns the unit prices used by the golden corpus ceilings.
func DefaultSchedule() Schedule {
	return Schedule{
		OpCall:       21000,
		OpScan:       1,
		OpRead:       3,
		OpDigit:      1,
		OpSlot:       8,
		OpStore:      5,
		OpModeSwitch: 2,
	}
}

// Price returns the unit price of op, or 0 for an unknown op.
func (s Schedule) Price(op Op) uint64 {
	if op >= numOps {
		return 0
	}

	return s[op]
}

// Meter receives charges from the decoder.
type Meter interface {
	// Charge records n occurrences of op.
	Charge(op Op, n int)
}

// Nop is a Meter that discards every charge.
type Nop struct{}

var _ Meter = Nop{}

// Charge implements Meter.
func (Nop) Charge(Op, int) {}

// Counter accumulates charges priced by a Schedule.
//
// Note: Counter is NOT thread-safe. A Counter belongs to a single decode call.
type Counter struct {
	schedule Schedule
	counts   [numOps]uint64
}

var _ Meter = (*Counter)(nil)

// NewCounter creates a Counter using the given schedule.
func NewCounter(s Schedule) *Counter {
	return &Counter{schedule: s}
}

// Charge implements Meter. Non-positive counts and unknown ops are ignored.
func (c *Counter) Charge(op Op, n int) {
	if n <= 0 || op >= numOps {
		return
	}
	c.counts[op] += uint64(n)
}

// Count returns how many times op was charged.
func (c *Counter) Count(op Op) uint64 {
	if op >= numOps {
		return 0
	}

	return c.counts[op]
}

// Units returns the cost attributed to op.
func (c *Counter) Units(op Op) uint64 {
	return c.Count(op) * c.schedule.Price(op)
}

// Total returns the total cost in units.
func (c *Counter) Total() uint64 {
	var total uint64
	for op := range numOps {
		total += c.Units(op)
	}

	return total
}

// Reset clears all accumulated charges.
func (c *Counter) Reset() {
	c.counts = [numOps]uint64{}
}

// Report returns an immutable snapshot of the counter.
func (c *Counter) Report() Report {
	r := Report{Total: c.Total()}
	for op := range numOps {
		r.Counts[op] = c.counts[op]
		r.Units[op] = c.Units(op)
	}

	return r
}

// Report is a snapshot of the cost of one call.
type Report struct {
	Total  uint64
	Counts [numOps]uint64
	Units  [numOps]uint64
}

// String returns a compact per-op breakdown, skipping ops that were never charged.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "total=%d", r.Total)
	for op := range numOps {
		if r.Counts[op] == 0 {
			continue
		}
		fmt.Fprintf(&sb, " %s=%dx%d", op, r.Counts[op], r.Units[op]/max(r.Counts[op], 1))
	}

	return sb.String()
}
