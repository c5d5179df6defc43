package runeword

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/runeword/decode"
	"github.com/arloliu/runeword/errs"
	"github.com/arloliu/runeword/meter"
)

const (
	steel      = "100300001012001015200200320030000000000000000000000000000000000000000000000086"
	worldstone = "1003000041829991322999001299907529998162999000299944229996182999005000000666"
)

// TestDecode verifies the default decoder decodes a standard token
func TestDecode(t *testing.T) {
	item, err := Decode(steel)
	require.NoError(t, err)
	require.Equal(t, steel, item.Token)
	require.Equal(t, uint32(1), item.ItemID)
	require.Equal(t, uint8(1), item.Type)
	require.Equal(t, uint8(3), item.AttributeCount)
	require.False(t, item.HasExtended())

	extended, err := Decode(worldstone)
	require.NoError(t, err)
	require.Equal(t, uint8(8), extended.AttributeCount)
	require.True(t, extended.HasExtended())

	_, err = Decode("")
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

// TestMeasure verifies the default schedule prices a call
func TestMeasure(t *testing.T) {
	item, report, err := Measure(steel)
	require.NoError(t, err)
	require.Equal(t, uint8(3), item.AttributeCount)
	require.Equal(t, uint64(21309), report.Total)
	require.Equal(t, uint64(1), report.Counts[meter.OpCall])

	_, report, err = Measure("")
	require.Error(t, err)
	require.Equal(t, uint64(21000), report.Total)
}

// TestInspect verifies the layout covers the whole token
func TestInspect(t *testing.T) {
	layout, err := Inspect(steel)
	require.NoError(t, err)
	require.Equal(t, uint8(3), layout.Item.AttributeCount)

	covered := len(layout.Trailer)
	for _, s := range layout.Spans {
		covered += s.Width
	}
	require.Equal(t, len(steel), covered)
}

// TestNewDecoder verifies options reach the decoder
func TestNewDecoder(t *testing.T) {
	dec, err := NewDecoder(decode.WithStrictTrailer(false))
	require.NoError(t, err)

	want, err := Decode(steel)
	require.NoError(t, err)
	got, err := dec.Decode(steel)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = NewDecoder(decode.WithWidthTable(nil))
	require.Error(t, err)
}

// TestDecodeAll verifies batch results match Decode in order
func TestDecodeAll(t *testing.T) {
	tokens := []string{steel, "1003a", worldstone, steel}

	results, err := DecodeAll(context.Background(), tokens)
	require.NoError(t, err)
	require.Len(t, results, len(tokens))

	for i, tok := range tokens {
		want, wantErr := Decode(tok)
		require.Equal(t, want, results[i].Item)
		require.Equal(t, wantErr == nil, results[i].Err == nil)
	}
}

// TestTokenID verifies hash generation is deterministic
func TestTokenID(t *testing.T) {
	id := TokenID(steel)
	require.Equal(t, id, TokenID(steel))
	require.NotZero(t, id)
	require.NotEqual(t, id, TokenID(worldstone))
}
