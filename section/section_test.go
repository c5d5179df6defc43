package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/runeword/errs"
)

func TestHeader_ValidateMagic(t *testing.T) {
	require.NoError(t, Header{Magic: MagicV1}.ValidateMagic())

	err := Header{Magic: 1004}.ValidateMagic()
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
	require.Contains(t, err.Error(), "1004")
}

func TestHeader_ValidateCount(t *testing.T) {
	for count := 0; count <= MaxSlots; count++ {
		require.NoError(t, Header{AttributeCount: uint8(count)}.ValidateCount())
	}

	err := Header{AttributeCount: MaxSlots + 1}.ValidateCount()
	require.ErrorIs(t, err, errs.ErrAttributeCountOutOfRange)
}

func TestSlot(t *testing.T) {
	empty := Slot{}
	require.True(t, empty.IsEmpty())
	require.True(t, empty.IsZero())
	require.False(t, empty.IsSentinel())

	std := Slot{Class: 2, TypeID: 40, Value: 6}
	require.False(t, std.IsEmpty())
	require.False(t, std.IsZero())
	require.False(t, std.IsSentinel())

	ext := Slot{Class: 2, TypeID: SentinelTypeID}
	require.True(t, ext.IsSentinel())
	require.False(t, ext.IsZero())
}
