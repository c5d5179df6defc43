package section

import (
	"fmt"

	"github.com/arloliu/runeword/errs"
)

// Header holds the fixed leading fields of a token.
type Header struct {
	// Magic is the version marker, MagicV1 for every supported token.
	Magic uint64
	// Item is the item id.
	Item uint32
	// Type is the item type code.
	Type uint8
	// AttributeCount is the number of present attribute slots (0..MaxSlots).
	// It is not stored in the header digits; the slot decoder fills it in.
	AttributeCount uint8
}

// ValidateMagic checks the version marker.
//
// Returns:
//   - error: ErrMalformedHeader if Magic is not MagicV1
func (h Header) ValidateMagic() error {
	if h.Magic != MagicV1 {
		return fmt.Errorf("%w: magic %d, want %d", errs.ErrMalformedHeader, h.Magic, MagicV1)
	}

	return nil
}

// ValidateCount checks the attribute count bound.
//
// Returns:
//   - error: ErrAttributeCountOutOfRange if AttributeCount exceeds MaxSlots
func (h Header) ValidateCount() error {
	if int(h.AttributeCount) > MaxSlots {
		return fmt.Errorf("%w: %d attributes, max %d", errs.ErrAttributeCountOutOfRange, h.AttributeCount, MaxSlots)
	}

	return nil
}
