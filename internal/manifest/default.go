package manifest

import (
	_ "embed"
	"fmt"
)

//go:embed default_tasks.json
var defaultRaw []byte

// Default returns the built-in task manifest, used when no manifest file
// exists yet. It goes through the same validation as a loaded file.
func Default() (*Manifest, error) {
	m, err := Parse(defaultRaw)
	if err != nil {
		return nil, fmt.Errorf("built-in manifest: %w", err)
	}
	return m, nil
}
