package decode

import (
	"fmt"
	"strings"

	"github.com/arloliu/runeword/format"
)

// HeaderSlot is the Span.Slot value of fields outside the attribute slots.
const HeaderSlot = -1

// Span locates one decoded field inside a token.
type Span struct {
	Kind   format.FieldKind
	Slot   int // attribute slot index, HeaderSlot for header and trailer
	Offset int
	Width  int
	Value  uint64
}

// Layout is the field-by-field breakdown of a token.
type Layout struct {
	// Item is the decoded record. It is zero if decoding failed.
	Item Item
	// Mode is the decode regime in effect after the last slot.
	Mode format.Mode
	// Spans lists every field read, in token order.
	Spans []Span
	// Trailer holds the digits after the last slot.
	Trailer string
}

func (l *Layout) add(kind format.FieldKind, slot, offset, width int, value uint64) {
	if l == nil {
		return
	}
	l.Spans = append(l.Spans, Span{Kind: kind, Slot: slot, Offset: offset, Width: width, Value: value})
}

// String renders the layout as an aligned table.
func (l Layout) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s %4s %6s %5s %s\n", "FIELD", "SLOT", "OFFSET", "WIDTH", "VALUE")
	for _, s := range l.Spans {
		slot := "-"
		if s.Slot != HeaderSlot {
			slot = fmt.Sprint(s.Slot)
		}
		fmt.Fprintf(&sb, "%-10s %4s %6d %5d %d\n", s.Kind, slot, s.Offset, s.Width, s.Value)
	}
	if l.Trailer != "" {
		fmt.Fprintf(&sb, "%-10s %4s %6s %5d %s\n", format.FieldTrailer, "-", "", len(l.Trailer), l.Trailer)
	}
	fmt.Fprintf(&sb, "mode=%s attributes=%d\n", l.Mode, l.Item.AttributeCount)

	return sb.String()
}
