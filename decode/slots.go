package decode

import (
	"fmt"

	"github.com/arloliu/runeword/cursor"
	"github.com/arloliu/runeword/errs"
	"github.com/arloliu/runeword/format"
	"github.com/arloliu/runeword/meter"
	"github.com/arloliu/runeword/section"
	"github.com/arloliu/runeword/width"
)

// slotState is the decode state threaded through the slot loop.
type slotState struct {
	mode  format.Mode
	ended bool // an empty slot has been seen
}

// reader wraps a cursor with the table, meter and optional layout of one call.
type reader struct {
	c     *cursor.Cursor
	t     *width.Table
	m     meter.Meter
	trace *Layout
}

func (r *reader) read(kind format.FieldKind, slot, n int) (uint64, error) {
	offset := r.c.Offset()
	v, err := r.c.Read(n)
	if err != nil {
		if slot == HeaderSlot {
			return 0, fmt.Errorf("%s: %w", kind, err)
		}

		return 0, fmt.Errorf("slot %d %s: %w", slot, kind, err)
	}
	r.trace.add(kind, slot, offset, n, v)

	return v, nil
}

// readHeader reads magic, item id and type code and validates the magic.
func (r *reader) readHeader() (section.Header, error) {
	var h section.Header

	magic, err := r.read(format.FieldMagic, HeaderSlot, r.t.HeaderWidth(format.FieldMagic))
	if err != nil {
		return h, err
	}
	h.Magic = magic
	if err := h.ValidateMagic(); err != nil {
		return h, err
	}

	item, err := r.read(format.FieldItem, HeaderSlot, r.t.HeaderWidth(format.FieldItem))
	if err != nil {
		return h, err
	}
	typ, err := r.read(format.FieldType, HeaderSlot, r.t.HeaderWidth(format.FieldType))
	if err != nil {
		return h, err
	}
	h.Item = uint32(item)
	h.Type = uint8(typ)

	return h, nil
}

// decodeSlots reads all section.MaxSlots slots in encoded order.
//
// Returns:
//   - [section.MaxSlots]section.Slot: Decoded slots, empty slots are zero
//   - uint8: Number of present slots
//   - format.Mode: Regime in effect after the last slot
//   - error: First failure; no later slot is read
func (r *reader) decodeSlots() ([section.MaxSlots]section.Slot, uint8, format.Mode, error) {
	var (
		slots [section.MaxSlots]section.Slot
		count uint8
	)

	state := slotState{mode: format.ModeStandard}
	for i := range section.MaxSlots {
		r.m.Charge(meter.OpSlot, 1)

		s, next, err := r.decodeSlot(i, state)
		if err != nil {
			return slots, count, state.mode, err
		}
		state = next
		if s.IsEmpty() {
			continue
		}
		slots[i] = s
		count++
	}

	return slots, count, state.mode, nil
}

// decodeSlot reads one slot under state and returns the state for the next slot.
func (r *reader) decodeSlot(i int, state slotState) (section.Slot, slotState, error) {
	class, err := r.read(format.FieldSlotClass, i, section.ClassWidth)
	if err != nil {
		return section.Slot{}, state, err
	}
	typeID, err := r.read(format.FieldSlotType, i, r.t.SlotTypeWidth())
	if err != nil {
		return section.Slot{}, state, err
	}

	s := section.Slot{Class: uint8(class), TypeID: uint16(typeID)}

	if s.IsEmpty() {
		value, err := r.read(format.FieldSlotValue, i, r.t.EmptyValueWidth())
		if err != nil {
			return section.Slot{}, state, err
		}
		s.Value = uint32(value)
		if !s.IsZero() {
			return section.Slot{}, state, fmt.Errorf("%w: slot %d is empty but carries type %d value %d",
				errs.ErrUnsupportedAttributeEncoding, i, s.TypeID, s.Value)
		}
		state.ended = true

		return s, state, nil
	}

	if state.ended {
		return section.Slot{}, state, fmt.Errorf("%w: slot %d is present after an empty slot",
			errs.ErrUnsupportedAttributeEncoding, i)
	}

	if s.IsSentinel() {
		if state.mode == format.ModeStandard {
			state.mode = format.ModeExtended
			r.m.Charge(meter.OpModeSwitch, 1)
		}
	} else if !r.t.AcceptsType(s.TypeID) {
		return section.Slot{}, state, fmt.Errorf("%w: slot %d type id %d",
			errs.ErrUnsupportedAttributeEncoding, i, s.TypeID)
	}

	w, ok := r.t.ValueWidth(state.mode, s.Class)
	if !ok {
		return section.Slot{}, state, fmt.Errorf("%w: slot %d width class %d unknown in %s regime",
			errs.ErrUnsupportedAttributeEncoding, i, s.Class, state.mode)
	}
	value, err := r.read(format.FieldSlotValue, i, w)
	if err != nil {
		return section.Slot{}, state, err
	}
	s.Value = uint32(value)
	r.m.Charge(meter.OpStore, 1)

	return s, state, nil
}

// checkOverflow reads the class digit that follows the last slot and rejects
// it if non-zero. With all section.MaxSlots slots present that digit would
// open a ninth attribute; with fewer it would be a present slot after an
// empty one. It consumes at most one digit.
func (r *reader) checkOverflow(count uint8) error {
	if r.c.Remaining() == 0 {
		return nil
	}

	class, err := r.c.Read(section.ClassWidth)
	if err != nil {
		return err
	}
	if class == section.EmptyClass {
		return nil
	}
	if int(count) < section.MaxSlots {
		return fmt.Errorf("%w: width class %d after empty slot %d at offset %d",
			errs.ErrUnsupportedAttributeEncoding, class, count, r.c.Offset()-1)
	}

	return fmt.Errorf("%w: width class %d opens slot %d at offset %d",
		errs.ErrAttributeCountOutOfRange, class, section.MaxSlots+1, r.c.Offset()-1)

	return nil
}
