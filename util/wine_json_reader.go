package util

import (
	"encoding/json"
	"fmt"
	"os"

	"wine-explorer/models"
)

// ReadWinesFromJSON loads a wine list from JSON on disk. The file may hold
// either a bare array or a page-shaped object with a "wines" field.
func ReadWinesFromJSON(filePath string) ([]models.Wine, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}

	var wines []models.Wine
	if err := json.Unmarshal(data, &wines); err == nil {
		return wines, nil
	}

	var page models.WinePage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wines from %q: %w", filePath, err)
	}
	return page.Wines, nil
}

// ReadFilterOptionsFromJSON loads a filter-options catalog from JSON on disk.
func ReadFilterOptionsFromJSON(filePath string) (*models.FilterOptions, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var options models.FilterOptions
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("failed to unmarshal FilterOptions: %w", err)
	}
	return &options, nil
}

// WriteWinesToJSON writes wines as indented JSON, the format ReadWinesFromJSON reads back.
func WriteWinesToJSON(filePath string, wines []models.Wine) error {
	data, err := json.MarshalIndent(wines, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wines: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", filePath, err)
	}
	return nil
}
