// Package compress provides the codecs used to store golden corpus files.
//
// A corpus file is compressed as a whole; the codec is chosen from the file
// extension (see format.CompressionFromExt):
//
//	.zst, .zstd  Zstandard (klauspost/compress, or valyala/gozstd with the gozstd build tag)
//	.s2          S2 (klauspost/compress)
//	.lz4         LZ4 frame (pierrec/lz4)
//
// All codecs are stateless values and safe for concurrent use.
package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/runeword/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original data, or an error if data is corrupted
	// or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// MaxDecodedSize bounds the decompressed size of a golden file.
const MaxDecodedSize = 64 << 20

// ErrTooLarge is returned when decompressed data would exceed MaxDecodedSize.
var ErrTooLarge = errors.New("decompressed data too large")

// Stats describes one compression.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size / original size, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for a compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Compress compresses data with the codec for compressionType and reports the sizes.
//
// Returns:
//   - []byte: Compressed data
//   - Stats: Sizes before and after compression
//   - error: Unsupported type or codec failure
func Compress(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compress: %w", compressionType, err)
	}

	return out, Stats{Algorithm: compressionType, OriginalSize: len(data), CompressedSize: len(out)}, nil
}

// Decompress restores data with the codec for compressionType.
func Decompress(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", compressionType, err)
	}

	return out, nil
}
