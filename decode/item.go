package decode

import (
	"iter"

	"github.com/arloliu/runeword/section"
)

// Item is the decoded record of one token.
//
// AttributeTypes and AttributeValues are parallel arrays: index i of both
// describes the same slot, in the order the slots appear in the token.
// Entries at index >= AttributeCount are zero.
type Item struct {
	// Token is the exact input string.
	Token string `json:"token"`
	// ItemID is the item id from the header.
	ItemID uint32 `json:"item"`
	// Type is the item type code from the header.
	Type uint8 `json:"type"`
	// AttributeCount is the number of present attributes (0..8).
	AttributeCount uint8 `json:"attributeCount"`
	// AttributeTypes holds the attribute type ids, section.SentinelTypeID for extended attributes.
	AttributeTypes [section.MaxSlots]uint16 `json:"attributeTypes"`
	// AttributeValues holds the attribute values.
	AttributeValues [section.MaxSlots]uint32 `json:"attributeValues"`
}

// Equivalent reports whether two records carry the same header and attributes.
// The Token field is ignored, so two different encodings of one logical item
// are equivalent.
func (it Item) Equivalent(other Item) bool {
	a, b := it, other
	a.Token, b.Token = "", ""

	return a == b
}

// Attributes iterates over the present (type, value) pairs in slot order.
func (it Item) Attributes() iter.Seq2[uint16, uint32] {
	return func(yield func(uint16, uint32) bool) {
		for i := 0; i < int(it.AttributeCount) && i < section.MaxSlots; i++ {
			if !yield(it.AttributeTypes[i], it.AttributeValues[i]) {
				return
			}
		}
	}
}

// HasExtended reports whether any present attribute carries the sentinel type id.
func (it Item) HasExtended() bool {
	for typeID := range it.Attributes() {
		if typeID == section.SentinelTypeID {
			return true
		}
	}

	return false
}
