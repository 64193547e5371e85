// Package jsonstore loads the static property and contact datasets into
// immutable, process-lifetime lookup maps. A missing or malformed data
// file is a cold failure: the store starts empty and every lookup
// reports not-found, but the process stays up.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
