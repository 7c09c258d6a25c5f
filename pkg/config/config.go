// Package config reads and writes plotview presets. A preset holds the same
// settings as the command line flags and overrides them when loaded.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

var ErrUnknownFormat = errors.New("unknown preset format")

// Preset is the set of options a run of plotview can be configured with.
type Preset struct {
	Input     string `json:"input,omitempty" toml:"input" yaml:"input,omitempty"`
	Output    string `json:"output,omitempty" toml:"output" yaml:"output,omitempty"`
	View      bool   `json:"view" toml:"view" yaml:"view"`
	Workspace string `json:"workspace" toml:"workspace" yaml:"workspace"`
	Segments  int    `json:"segments" toml:"segments" yaml:"segments"`
	Palette   string `json:"palette" toml:"palette" yaml:"palette"`
	Strict    bool   `json:"strict" toml:"strict" yaml:"strict"`
	Serve     string `json:"serve,omitempty" toml:"serve" yaml:"serve,omitempty"`
	LogFile   string `json:"log,omitempty" toml:"log" yaml:"log,omitempty"`
}

// Format is a preset file encoding.
type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf guesses the format of a preset file from its extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads the preset at path into p. Settings missing in the file keep their
// current value.
func Load(path string, p *Preset) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading preset: %w", err)
	}

	if err := Decode(data, format, p); err != nil {
		return fmt.Errorf("parsing preset from %s: %w", path, err)
	}

	return nil
}

// Decode parses data of the given format into p.
func Decode(data []byte, format Format, p *Preset) error {
	switch format {
	case JSON:
		return json.Unmarshal(data, p)
	case TOML:
		_, err := toml.Decode(string(data), p)
		return err
	case YAML:
		return yaml.Unmarshal(data, p)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Encode serializes p in the given format.
func Encode(p Preset, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return json.MarshalIndent(p, "", "\t")
	case TOML:
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(p); err != nil {
			return nil, err
		}

		return []byte(sb.String()), nil
	case YAML:
		return yaml.Marshal(p)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
