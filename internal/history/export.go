// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the full build history to dir/history.yaml and
// returns the written path.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	records, err := s.Recent(ctx, exportLimit)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "history.yaml")
	data, err := yaml.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ExportJSON writes the full build history to dir/history.json and
// returns the written path.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	records, err := s.Recent(ctx, exportLimit)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "history.json")
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
