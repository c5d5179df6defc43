// Package corpus loads golden token vectors and verifies a decoder against them.
//
// A golden file is a YAML document listing tokens with their expected decoded
// records and the highest metered cost accepted for each one:
//
//	table_fingerprint: 1234567890
//	total_ceiling: 1152469
//	vectors:
//	  - name: Steel
//	    token: "1003000010120010152002003..."
//	    item: 1
//	    type: 1
//	    attribute_count: 3
//	    attribute_types: [1, 2, 3, 0, 0, 0, 0, 0]
//	    attribute_values: [15, 3, 0, 0, 0, 0, 0, 0]
//	    ceiling: 25858
//
// Files whose name ends in .zst, .zstd, .s2 or .lz4 are compressed as a whole
// with the matching codec.
package corpus

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/runeword/compress"
	"github.com/arloliu/runeword/decode"
	"github.com/arloliu/runeword/format"
	"github.com/arloliu/runeword/internal/collision"
	"github.com/arloliu/runeword/internal/hash"
	"github.com/arloliu/runeword/internal/pool"
	"github.com/arloliu/runeword/section"
)

// Vector is one golden token and its expected record.
type Vector struct {
	Name            string   `yaml:"name"`
	Token           string   `yaml:"token"`
	Item            uint32   `yaml:"item"`
	Type            uint8    `yaml:"type"`
	AttributeCount  uint8    `yaml:"attribute_count"`
	AttributeTypes  []uint16 `yaml:"attribute_types,flow"`
	AttributeValues []uint32 `yaml:"attribute_values,flow"`
	// Ceiling is the highest accepted metered cost; 0 disables the check.
	Ceiling uint64 `yaml:"ceiling,omitempty"`
}

// Expected returns the record the vector describes.
func (v Vector) Expected() decode.Item {
	it := decode.Item{
		Token:          v.Token,
		ItemID:         v.Item,
		Type:           v.Type,
		AttributeCount: v.AttributeCount,
	}
	copy(it.AttributeTypes[:], v.AttributeTypes)
	copy(it.AttributeValues[:], v.AttributeValues)

	return it
}

// VectorFromItem builds a vector from a decoded record.
func VectorFromItem(name string, it decode.Item, ceiling uint64) Vector {
	return Vector{
		Name:            name,
		Token:           it.Token,
		Item:            it.ItemID,
		Type:            it.Type,
		AttributeCount:  it.AttributeCount,
		AttributeTypes:  it.AttributeTypes[:],
		AttributeValues: it.AttributeValues[:],
		Ceiling:         ceiling,
	}
}

// File is a golden file.
type File struct {
	// TableFingerprint is the width table fingerprint the ceilings were
	// measured under; 0 if unknown.
	TableFingerprint uint64 `yaml:"table_fingerprint,omitempty"`
	// TotalCeiling bounds the summed cost of all vectors; 0 disables the check.
	TotalCeiling uint64   `yaml:"total_ceiling,omitempty"`
	Vectors      []Vector `yaml:"vectors"`
}

// Validate checks vector shapes and uniqueness.
//
// Returns:
//   - error: ErrDuplicateVector for repeated names or tokens, or a shape error
func (f *File) Validate() error {
	_, err := f.track(hash.ID)

	return err
}

// HasIDCollision reports whether two distinct tokens of a valid file share a
// token id. Consumers keying results by hash.ID must then compare tokens too.
func (f *File) HasIDCollision() bool {
	tracker, err := f.track(hash.ID)

	return err == nil && tracker.HasCollision()
}

func (f *File) track(id func(string) uint64) (*collision.Tracker, error) {
	if len(f.Vectors) == 0 {
		return nil, fmt.Errorf("golden file has no vectors")
	}

	tracker := collision.NewTracker()
	for i, v := range f.Vectors {
		if len(v.AttributeTypes) != section.MaxSlots || len(v.AttributeValues) != section.MaxSlots {
			return nil, fmt.Errorf("vector %d (%s): want %d attribute types and values, got %d and %d",
				i, v.Name, section.MaxSlots, len(v.AttributeTypes), len(v.AttributeValues))
		}
		if int(v.AttributeCount) > section.MaxSlots {
			return nil, fmt.Errorf("vector %d (%s): attribute count %d exceeds %d", i, v.Name, v.AttributeCount, section.MaxSlots)
		}
		if err := tracker.Track(v.Name, v.Token, id(v.Token)); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
	}

	return tracker, nil
}

// Parse decodes and validates a golden file from uncompressed YAML.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse golden file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Marshal encodes f as YAML.
func Marshal(f *File) ([]byte, error) {
	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode golden file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode golden file: %w", err)
	}

	return bytes.Clone(buf.Bytes()), nil
}

// Load reads a golden file, decompressing it according to its extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load golden file: %w", err)
	}

	data, err = compress.Decompress(format.CompressionFromExt(path), data)
	if err != nil {
		return nil, fmt.Errorf("load golden file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Save writes f to path, compressing it according to the extension.
//
// Returns:
//   - compress.Stats: Sizes before and after compression
//   - error: Validation, encoding or write error
func Save(path string, f *File) (compress.Stats, error) {
	if err := f.Validate(); err != nil {
		return compress.Stats{}, err
	}

	data, err := Marshal(f)
	if err != nil {
		return compress.Stats{}, err
	}

	out, stats, err := compress.Compress(format.CompressionFromExt(path), data)
	if err != nil {
		return compress.Stats{}, fmt.Errorf("save golden file %s: %w", path, err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil { //nolint: gosec
		return compress.Stats{}, fmt.Errorf("save golden file: %w", err)
	}

	return stats, nil
}

// Tokens reads one token per line, skipping blank lines and lines starting with '#'.
func Tokens(data []byte) []string {
	var tokens []string
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, line)
	}

	return tokens
}
