package decode

import "github.com/arloliu/runeword/section"

// assemble builds the final record from the decoded header and slots.
// It never fails: every check happens upstream. Slots at index >= the
// attribute count are zero-filled regardless of their content.
func assemble(token string, h section.Header, slots [section.MaxSlots]section.Slot) Item {
	it := Item{
		Token:          token,
		ItemID:         h.Item,
		Type:           h.Type,
		AttributeCount: h.AttributeCount,
	}
	for i := 0; i < int(h.AttributeCount) && i < section.MaxSlots; i++ {
		it.AttributeTypes[i] = slots[i].TypeID
		it.AttributeValues[i] = slots[i].Value
	}

	return it
}
