// Package width provides the Field Width Table: the external, read-only
// mapping from field identity to digit width that tells the decoder where
// each field of a token ends.
//
// The table distinguishes header fields (fixed widths), the slot type id
// width, the footprint of an empty slot, and two class tables that give the
// value width of a present slot from its width class digit: one for the
// standard regime and one for the extended (sentinel) regime.
//
// Tables are built once, from Default() or a configuration file, and are
// immutable afterwards; they are safe for concurrent use.
package width

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/runeword/errs"
	"github.com/arloliu/runeword/format"
	"github.com/arloliu/runeword/internal/hash"
	"github.com/arloliu/runeword/section"
)

// ClassEntry maps a width class digit to a value width.
type ClassEntry struct {
	Class uint8 `toml:"class" yaml:"class"`
	Width int   `toml:"width" yaml:"width"`
}

// Spec is the serialisable form of a Table.
type Spec struct {
	MagicWidth      int          `toml:"magic_width" yaml:"magic_width"`
	ItemWidth       int          `toml:"item_width" yaml:"item_width"`
	TypeWidth       int          `toml:"type_width" yaml:"type_width"`
	SlotTypeWidth   int          `toml:"slot_type_width" yaml:"slot_type_width"`
	EmptyValueWidth int          `toml:"empty_value_width" yaml:"empty_value_width"`
	Standard        []ClassEntry `toml:"standard" yaml:"standard"`
	Extended        []ClassEntry `toml:"extended" yaml:"extended"`
	// AllowedTypes restricts the standard attribute type ids. Empty accepts any id in 1..998.
	AllowedTypes []uint16 `toml:"allowed_types" yaml:"allowed_types"`
}

// DefaultSpec returns the layout that reproduces the golden corpus.
//
// Only class 2 occurs in known tokens, in both regimes. The extended widths
// for classes 3..8 (class c carries c+1 digits) are unconfirmed and follow
// the class 2 pattern; load a table file to override them.
func DefaultSpec() Spec {
	spec := Spec{
		MagicWidth:      section.DefaultMagicWidth,
		ItemWidth:       section.DefaultItemWidth,
		TypeWidth:       section.DefaultTypeWidth,
		SlotTypeWidth:   section.DefaultSlotTypeWidth,
		EmptyValueWidth: section.DefaultEmptyValueWidth,
		Standard:        []ClassEntry{{Class: 2, Width: 3}},
	}
	// extended classes are self-describing: class c carries c+1 digits
	for c := uint8(2); c <= section.MaxValueWidth-1; c++ {
		spec.Extended = append(spec.Extended, ClassEntry{Class: c, Width: int(c) + 1})
	}

	return spec
}

// Table is an immutable field width table.
type Table struct {
	magic, item, typ int
	slotType         int
	emptyValue       int
	standard         map[uint8]int
	extended         map[uint8]int
	allowed          map[uint16]struct{}
	fingerprint      uint64
}

var defaultTable = mustBuild(DefaultSpec())

// Default returns the default table.
func Default() *Table {
	return defaultTable
}

func mustBuild(spec Spec) *Table {
	t, err := New(spec)
	if err != nil {
		panic(fmt.Sprintf("width: invalid built-in spec: %v", err))
	}

	return t
}

// New validates spec and builds a table from it.
//
// Returns:
//   - *Table: The immutable table
//   - error: ErrInvalidWidthTable wrapping the first violation found
func New(spec Spec) (*Table, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	t := &Table{
		magic:      spec.MagicWidth,
		item:       spec.ItemWidth,
		typ:        spec.TypeWidth,
		slotType:   spec.SlotTypeWidth,
		emptyValue: spec.EmptyValueWidth,
		standard:   make(map[uint8]int, len(spec.Standard)),
		extended:   make(map[uint8]int, len(spec.Extended)),
	}
	for _, e := range spec.Standard {
		t.standard[e.Class] = e.Width
	}
	for _, e := range spec.Extended {
		t.extended[e.Class] = e.Width
	}
	if len(spec.AllowedTypes) > 0 {
		t.allowed = make(map[uint16]struct{}, len(spec.AllowedTypes))
		for _, id := range spec.AllowedTypes {
			t.allowed[id] = struct{}{}
		}
	}
	t.fingerprint = hash.Sum(t.canonical()...)

	return t, nil
}

// Validate checks every width against the in-memory field limits.
func (s Spec) Validate() error {
	checks := []struct {
		name     string
		v        int
		min, max int
	}{
		{"magic_width", s.MagicWidth, section.MinMagicWidth, 19},
		{"item_width", s.ItemWidth, 1, section.MaxItemWidth},
		{"type_width", s.TypeWidth, 1, section.MaxTypeWidth},
		{"slot_type_width", s.SlotTypeWidth, section.MinSlotTypeWidth, section.MaxSlotTypeWidth},
		{"empty_value_width", s.EmptyValueWidth, 1, section.MaxValueWidth},
	}
	for _, c := range checks {
		if c.v < c.min || c.v > c.max {
			return fmt.Errorf("%w: %s %d outside %d..%d", errs.ErrInvalidWidthTable, c.name, c.v, c.min, c.max)
		}
	}

	if len(s.Standard) == 0 {
		return fmt.Errorf("%w: no standard classes", errs.ErrInvalidWidthTable)
	}
	standard, err := validateClasses("standard", s.Standard)
	if err != nil {
		return err
	}
	extended, err := validateClasses("extended", s.Extended)
	if err != nil {
		return err
	}
	for class := range standard {
		if _, ok := extended[class]; !ok {
			return fmt.Errorf("%w: standard class %d missing from extended classes", errs.ErrInvalidWidthTable, class)
		}
	}

	for _, id := range s.AllowedTypes {
		if id == 0 || id == section.SentinelTypeID {
			return fmt.Errorf("%w: allowed type %d is reserved", errs.ErrInvalidWidthTable, id)
		}
	}

	return nil
}

func validateClasses(name string, entries []ClassEntry) (map[uint8]int, error) {
	seen := make(map[uint8]int, len(entries))
	for _, e := range entries {
		if e.Class == section.EmptyClass || e.Class > 9 {
			return nil, fmt.Errorf("%w: %s class %d outside 1..9", errs.ErrInvalidWidthTable, name, e.Class)
		}
		if e.Width < 1 || e.Width > section.MaxValueWidth {
			return nil, fmt.Errorf("%w: %s class %d width %d outside 1..%d",
				errs.ErrInvalidWidthTable, name, e.Class, e.Width, section.MaxValueWidth)
		}
		if _, dup := seen[e.Class]; dup {
			return nil, fmt.Errorf("%w: %s class %d listed twice", errs.ErrInvalidWidthTable, name, e.Class)
		}
		seen[e.Class] = e.Width
	}

	return seen, nil
}

// HeaderWidth returns the width of a header field, or 0 for non-header kinds.
func (t *Table) HeaderWidth(kind format.FieldKind) int {
	switch kind {
	case format.FieldMagic:
		return t.magic
	case format.FieldItem:
		return t.item
	case format.FieldType:
		return t.typ
	default:
		return 0
	}
}

// HeaderSpan returns the total width of the header.
func (t *Table) HeaderSpan() int {
	return t.magic + t.item + t.typ
}

// SlotTypeWidth returns the width of a slot's attribute type id.
func (t *Table) SlotTypeWidth() int {
	return t.slotType
}

// EmptyValueWidth returns the value width of an empty slot.
func (t *Table) EmptyValueWidth() int {
	return t.emptyValue
}

// ValueWidth returns the value width of a present slot.
//
// Parameters:
//   - mode: Current decode regime
//   - class: Width class digit of the slot (non-zero)
//
// Returns:
//   - int: Value width in digits
//   - bool: false if the class is unknown in this regime
func (t *Table) ValueWidth(mode format.Mode, class uint8) (int, bool) {
	var w int
	var ok bool
	switch mode {
	case format.ModeStandard:
		w, ok = t.standard[class]
	case format.ModeExtended:
		w, ok = t.extended[class]
	}

	return w, ok
}

// AcceptsType reports whether id is a valid standard attribute type id.
// The sentinel id is never a standard id.
func (t *Table) AcceptsType(id uint16) bool {
	if id == 0 || id == section.SentinelTypeID {
		return false
	}
	if t.allowed == nil {
		return true
	}
	_, ok := t.allowed[id]

	return ok
}

// Fingerprint returns a stable hash of the table contents. Golden corpora record
// it so that cost ceilings measured under a different table are detectable.
func (t *Table) Fingerprint() uint64 {
	return t.fingerprint
}

// Spec returns the serialisable form of the table, with classes sorted.
func (t *Table) Spec() Spec {
	spec := Spec{
		MagicWidth:      t.magic,
		ItemWidth:       t.item,
		TypeWidth:       t.typ,
		SlotTypeWidth:   t.slotType,
		EmptyValueWidth: t.emptyValue,
		Standard:        entries(t.standard),
		Extended:        entries(t.extended),
	}
	if t.allowed != nil {
		spec.AllowedTypes = slices.Sorted(maps.Keys(t.allowed))
	}

	return spec
}

func entries(m map[uint8]int) []ClassEntry {
	out := make([]ClassEntry, 0, len(m))
	for _, c := range slices.Sorted(maps.Keys(m)) {
		out = append(out, ClassEntry{Class: c, Width: m[c]})
	}

	return out
}

func (t *Table) canonical() []string {
	spec := t.Spec()
	parts := []string{
		"header", strconv.Itoa(spec.MagicWidth), strconv.Itoa(spec.ItemWidth), strconv.Itoa(spec.TypeWidth),
		"slot", strconv.Itoa(spec.SlotTypeWidth), strconv.Itoa(spec.EmptyValueWidth),
	}
	parts = append(parts, "standard", joinEntries(spec.Standard))
	parts = append(parts, "extended", joinEntries(spec.Extended))
	ids := make([]string, 0, len(spec.AllowedTypes))
	for _, id := range spec.AllowedTypes {
		ids = append(ids, strconv.Itoa(int(id)))
	}
	parts = append(parts, "allowed", strings.Join(ids, ","))

	return parts
}

func joinEntries(es []ClassEntry) string {
	var sb strings.Builder
	for i, e := range es {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d:%d", e.Class, e.Width)
	}

	return sb.String()
}
