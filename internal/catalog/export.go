// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes every catalog record to dataDir/index/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) error {
	convs, err := s.List(ctx, -1)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(convs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return s.writeExport("export.yaml", data)
}

// ExportJSON writes every catalog record to dataDir/index/export.json.
func (s *Store) ExportJSON(ctx context.Context) error {
	convs, err := s.List(ctx, -1)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(convs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return s.writeExport("export.json", data)
}

func (s *Store) writeExport(name string, data []byte) error {
	path := filepath.Join(s.dataDir, indexDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
