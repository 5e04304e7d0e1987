package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and validates the manifest at path. Any failure here is fatal
// for the app session: there is nothing to train without a task list.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse validates raw manifest JSON against the schema and decodes it.
func Parse(raw []byte) (*Manifest, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}
