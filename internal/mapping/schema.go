package mapping

import (
	"errors"
	"fmt"
)

// File is a parsed declaration file.
type File struct {
	Version  string        `yaml:"version" toml:"version"`
	Bindings []Declaration `yaml:"bindings" toml:"bindings"`
}

// Declaration declares one binding.
type Declaration struct {
	Name        string     `yaml:"name,omitempty" toml:"name"`
	Source      string     `yaml:"source" toml:"source"`
	SourcePath  string     `yaml:"source_path" toml:"source_path"`
	SourceType  string     `yaml:"source_type,omitempty" toml:"source_type"`
	Target      string     `yaml:"target" toml:"target"`
	TargetPath  string     `yaml:"target_path" toml:"target_path"`
	TargetType  string     `yaml:"target_type,omitempty" toml:"target_type"`
	Mode        string     `yaml:"mode,omitempty" toml:"mode"`
	Detect      string     `yaml:"detect,omitempty" toml:"detect"`
	Conversions StringList `yaml:"conversions,omitempty" toml:"conversions"`
}

// StringList is a string slice that can be unmarshaled from a single string
// or a list.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}

		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi

		return nil
	}

	return errors.New("expected string or list of strings")
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *StringList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*s = []string{v}
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in list, got %T", item)
			}

			out = append(out, str)
		}

		*s = out
	default:
		return fmt.Errorf("expected string or list of strings, got %T", data)
	}

	return nil
}
