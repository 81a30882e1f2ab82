package main

import (
	"fmt"
	"os"

	"station-reassignment-service/internal/request"

	"gopkg.in/yaml.v3"
)

// loadBatchFile reads a batch document. JSON is valid YAML, so both work.
func loadBatchFile(path string) (*request.BatchReassignRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var req request.BatchReassignRequest
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}
	return &req, nil
}
