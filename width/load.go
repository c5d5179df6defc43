package width

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// tomlSpec mirrors Spec so that keys absent from the file keep their defaults.
type tomlSpec struct {
	MagicWidth      int          `toml:"magic_width"`
	ItemWidth       int          `toml:"item_width"`
	TypeWidth       int          `toml:"type_width"`
	SlotTypeWidth   int          `toml:"slot_type_width"`
	EmptyValueWidth int          `toml:"empty_value_width"`
	Standard        []ClassEntry `toml:"standard"`
	Extended        []ClassEntry `toml:"extended"`
	AllowedTypes    []uint16     `toml:"allowed_types"`
}

// Load reads a width table from a .toml, .yaml or .yml file. Keys missing
// from the file keep their DefaultSpec values; unknown keys are rejected.
//
// Parameters:
//   - path: Configuration file path
//
// Returns:
//   - *Table: The validated table
//   - error: Read, parse or validation error
func Load(path string) (*Table, error) {
	var (
		spec Spec
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		spec, err = loadTOML(path)
	case ".yaml", ".yml":
		spec, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("width table %s: unsupported file extension", path)
	}
	if err != nil {
		return nil, err
	}

	t, err := New(spec)
	if err != nil {
		return nil, fmt.Errorf("width table %s: %w", path, err)
	}

	return t, nil
}

func loadTOML(path string) (Spec, error) {
	spec := DefaultSpec()

	var raw tomlSpec
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Spec{}, fmt.Errorf("load width table: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Spec{}, fmt.Errorf("load width table: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("magic_width") {
		spec.MagicWidth = raw.MagicWidth
	}
	if meta.IsDefined("item_width") {
		spec.ItemWidth = raw.ItemWidth
	}
	if meta.IsDefined("type_width") {
		spec.TypeWidth = raw.TypeWidth
	}
	if meta.IsDefined("slot_type_width") {
		spec.SlotTypeWidth = raw.SlotTypeWidth
	}
	if meta.IsDefined("empty_value_width") {
		spec.EmptyValueWidth = raw.EmptyValueWidth
	}
	if meta.IsDefined("standard") {
		spec.Standard = raw.Standard
	}
	if meta.IsDefined("extended") {
		spec.Extended = raw.Extended
	}
	if meta.IsDefined("allowed_types") {
		spec.AllowedTypes = raw.AllowedTypes
	}

	return spec, nil
}

func loadYAML(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("load width table: %w", err)
	}

	spec := DefaultSpec()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("parse width table %s: %w", path, err)
	}

	return spec, nil
}

// MarshalTOML renders spec as a TOML document accepted by Load.
func MarshalTOML(spec Spec) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(spec); err != nil {
		return nil, fmt.Errorf("encode width table: %w", err)
	}

	return buf.Bytes(), nil
}

// MarshalYAML renders spec as a YAML document accepted by Load.
func MarshalYAML(spec Spec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encode width table: %w", err)
	}

	return data, nil
}
