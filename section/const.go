package section

const (
	// MagicV1 is the version marker that opens every token of the current format.
	MagicV1 = 1003

	// SentinelTypeID marks an extended attribute. The first sentinel slot switches
	// the decoder into the extended regime for the rest of the token.
	SentinelTypeID = 999

	// MaxSlots is the fixed number of attribute slots in every token.
	MaxSlots = 8

	// EmptyClass is the width class digit of an unused slot.
	EmptyClass = 0

	// ClassWidth is the digit width of the width class field.
	ClassWidth = 1
)

// default field widths in digits
const (
	DefaultMagicWidth      = 4
	DefaultItemWidth       = 5
	DefaultTypeWidth       = 2
	DefaultSlotTypeWidth   = 3
	DefaultEmptyValueWidth = 3
)

// limits imposed by the in-memory field types
const (
	MaxItemWidth     = 9 // Item is a uint32
	MaxTypeWidth     = 2 // Type is a uint8
	MaxSlotTypeWidth = 4 // AttributeTypes entries are uint16
	MinSlotTypeWidth = 3 // must hold SentinelTypeID
	MaxValueWidth    = 9 // AttributeValues entries are uint32
	MinMagicWidth    = 4 // must hold MagicV1
)
