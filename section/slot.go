package section

// Slot is one decoded (type, value) attribute position.
type Slot struct {
	// Class is the width class digit; EmptyClass marks an unused slot.
	Class uint8
	// TypeID is the attribute type id, SentinelTypeID for extended attributes.
	TypeID uint16
	// Value is the attribute value.
	Value uint32
}

// IsEmpty reports whether the slot is unused.
func (s Slot) IsEmpty() bool {
	return s.Class == EmptyClass
}

// IsSentinel reports whether the slot carries the sentinel type id.
func (s Slot) IsSentinel() bool {
	return s.TypeID == SentinelTypeID
}

// IsZero reports whether every field of the slot is zero.
func (s Slot) IsZero() bool {
	return s == Slot{}
}
