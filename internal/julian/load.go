package julian

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadInstants reads a YAML sequence of instants from the file at path.
func LoadInstants(path string) ([]Instant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instants file: %w", err)
	}
	defer f.Close()

	return DecodeInstants(f)
}

// DecodeInstants parses a YAML sequence of instants.
// Unknown fields are rejected so typos like "mintue:" surface as errors.
// An empty document yields no instants.
func DecodeInstants(r io.Reader) ([]Instant, error) {
	var instants []Instant
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&instants); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return instants, nil
}
