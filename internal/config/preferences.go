package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrEmptySourceID = errors.New("source id cannot be empty")

// Preferences is the small record remembered between runs.
type Preferences struct {
	SpreadsheetID string `json:"spreadsheet_id,omitempty"`
}

// LoadPreferences reads path. A missing or unreadable file yields the zero
// value; it never fails.
func LoadPreferences(path string) Preferences {
	var p Preferences
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}
	}
	return p
}

// SavePreferences replaces the file at path.
func SavePreferences(path string, p Preferences) error {
	p.SpreadsheetID = strings.TrimSpace(p.SpreadsheetID)
	if p.SpreadsheetID == "" {
		return ErrEmptySourceID
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
