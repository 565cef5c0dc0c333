package directory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "foodbridge/internal/errors"
)

// Parse decodes a directory document. YAML and JSON are both accepted.
func Parse(data []byte) (*Directory, error) {
	var d Directory
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: failed to parse directory: %v", apperrors.ErrInvalidInput, err)
	}
	if d.Cities == nil {
		return nil, apperrors.ValidationError{Field: "cities", Message: "at least one city is required"}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile reads and parses a directory file from disk
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory file %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal encodes a directory as YAML
func Marshal(d *Directory) ([]byte, error) {
	return yaml.Marshal(d)
}
