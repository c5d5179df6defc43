package format

import (
	"path/filepath"
	"strings"
)

type (
	Mode            uint8
	FieldKind       uint8
	CompressionType uint8
)

const (
	ModeStandard Mode = 0x0 // ModeStandard decodes slot values with the standard class widths.
	ModeExtended Mode = 0x1 // ModeExtended is entered at the first sentinel slot and never left.
)

const (
	FieldMagic     FieldKind = 0x1 // FieldMagic is the leading version/magic marker.
	FieldItem      FieldKind = 0x2 // FieldItem is the item id.
	FieldType      FieldKind = 0x3 // FieldType is the item type code.
	FieldSlotClass FieldKind = 0x4 // FieldSlotClass is the width class digit of a slot.
	FieldSlotType  FieldKind = 0x5 // FieldSlotType is the attribute type id of a slot.
	FieldSlotValue FieldKind = 0x6 // FieldSlotValue is the attribute value of a slot.
	FieldTrailer   FieldKind = 0x7 // FieldTrailer is the opaque tail after the last slot.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "Standard"
	case ModeExtended:
		return "Extended"
	default:
		return "Unknown"
	}
}

func (k FieldKind) String() string {
	switch k {
	case FieldMagic:
		return "Magic"
	case FieldItem:
		return "Item"
	case FieldType:
		return "Type"
	case FieldSlotClass:
		return "SlotClass"
	case FieldSlotType:
		return "SlotType"
	case FieldSlotValue:
		return "SlotValue"
	case FieldTrailer:
		return "Trailer"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CompressionFromExt picks the compression of a file from its final extension.
// Unknown extensions map to CompressionNone.
func CompressionFromExt(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
