package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a project catalog.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

var ErrUnknownFormat = errors.New("unknown catalog format")

// FormatOf picks the catalog format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load reads the catalog at path once and returns the frozen store.
func Load(path string) (*Store, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == FormatSQLite {
		return LoadSQLite(path)
	}

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - catalog path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Decode(data, format)
}

// Decode parses an in-memory JSON or YAML catalog.
func Decode(data []byte, format Format) (*Store, error) {
	var projects []Project
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &projects); err != nil {
			return nil, fmt.Errorf("parse json catalog: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &projects); err != nil {
			return nil, fmt.Errorf("parse yaml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode %q: %w", format, ErrUnknownFormat)
	}
	return NewStore(projects)
}
