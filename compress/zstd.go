package compress

// ZstdCompressor compresses with Zstandard.
//
// The default build uses the pure Go klauspost/compress implementation with
// pooled encoders and decoders. Building with the gozstd tag and cgo enabled
// switches to the valyala/gozstd bindings to the reference C library.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
