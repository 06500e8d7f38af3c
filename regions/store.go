package regions

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissing   = errors.New("regions: config missing")
	ErrMalformed = errors.New("regions: config malformed")
)

// Format selects the on-disk encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the format from the path extension; anything that is not
// .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode parses a document and merges it over the empty defaults.
func Decode(data []byte, format Format) (*RegionSet, error) {
	var p Partial
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	default:
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return nil, err
	}
	return Merge(p), nil
}

// Encode serialises all five layers and the offsets.
func Encode(s *RegionSet, format Format) ([]byte, error) {
	d := s.document()
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
}

// Load reads the config at path. A missing or malformed file is not fatal:
// Load still returns a usable empty set alongside an error wrapping
// ErrMissing or ErrMalformed, which callers report as a warning.
func Load(path string) (*RegionSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty(), fmt.Errorf("regions: load %s: %w", path, ErrMissing)
		}
		return Empty(), fmt.Errorf("regions: load %s: %w: %w", path, ErrMissing, err)
	}
	s, err := Decode(b, FormatFor(path))
	if err != nil {
		return Empty(), fmt.Errorf("regions: load %s: %w: %w", path, ErrMalformed, err)
	}
	return s, nil
}

// Save overwrites path with the full set. The document is written to a
// temporary file next to path and renamed into place, so a failed save leaves
// the previous file intact. s is never modified.
func Save(path string, s *RegionSet) error {
	b, err := Encode(s, FormatFor(path))
	if err != nil {
		return fmt.Errorf("regions: encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("regions: save %s: %w", path, err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("regions: save %s: %w", path, err)
	}
	tmp := f.Name()
	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("regions: save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("regions: save %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("regions: save %s: %w", path, err)
	}
	return nil
}
