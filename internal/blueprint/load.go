package blueprint

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a blueprint encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported blueprint extension %q", filepath.Ext(path))
	}
}

// ParseError describes a blueprint that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads, decodes and validates the blueprint at path.
func Load(path string) (*Blueprint, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blueprint: %w", err)
	}
	b, err := parse(path, data, format)
	if err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blueprint %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes and validates a blueprint.
func Parse(data []byte, format Format) (*Blueprint, error) {
	b, err := parse("<input>", data, format)
	if err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blueprint: %w", err)
	}
	return b, nil
}

func parse(source string, data []byte, format Format) (*Blueprint, error) {
	var b Blueprint
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&b); err != nil {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&b); err != nil {
			perr := &ParseError{Path: source, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return nil, perr
		}
	default:
		return nil, fmt.Errorf("unknown blueprint format %q", format)
	}
	return &b, nil
}

// Marshal encodes b in the given format.
func Marshal(b *Blueprint, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(b)
	case FormatTOML:
		return toml.Marshal(b)
	default:
		return nil, fmt.Errorf("unknown blueprint format %q", format)
	}
}
