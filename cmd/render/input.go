package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2grid/h2grid-api/internal/types/business"
	"gopkg.in/yaml.v3"
)

// loadSnapshot reads a snapshot file. .yaml and .yml files are parsed as
// YAML, everything else as JSON.
func loadSnapshot(path string) (*business.DashboardData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("snapshot %s is empty", path)
	}

	var data business.DashboardData
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse YAML snapshot: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse JSON snapshot: %w", err)
		}
	}
	return &data, nil
}
