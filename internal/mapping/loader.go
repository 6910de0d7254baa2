package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultMode is used by declarations that name no mode.
	DefaultMode = "one_way_to_target"
	// DefaultVersion is assumed when a file names no version.
	DefaultVersion = "1"
)

// LoadFile loads a declaration file, as TOML when the name ends in .toml
// and as YAML otherwise.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// ParseTOML parses TOML data into a File. Bindings are an array of tables:
//
//	version = "1"
//	[[bindings]]
//	source = "player"
//	source_path = "Stats.Score"
func ParseTOML(data []byte) (*File, error) {
	var f File

	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return nil, fmt.Errorf("failed to parse declaration TOML: unknown keys %s", strings.Join(keys, ", "))
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	for i := range f.Bindings {
		d := &f.Bindings[i]

		if d.Mode == "" {
			d.Mode = DefaultMode
		}

		if d.Name == "" && d.Source != "" && d.Target != "" {
			d.Name = d.Source + "." + d.SourcePath + " -> " + d.Target + "." + d.TargetPath
		}
	}
}
