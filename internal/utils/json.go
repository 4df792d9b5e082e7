package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadJSON reads a JSON file into target, rejecting unknown fields.
func LoadJSON(path string, target any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// WriteJSON writes data to w as indented JSON followed by a newline.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	return nil
}

// SaveJSON writes data to path through a temporary file in the same
// directory, so readers never see a partial file.
func SaveJSON(path string, data any) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteJSON(tmp, data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
