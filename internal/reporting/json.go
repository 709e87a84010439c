// Package reporting renders an Analysis as a JSON artifact, a JUnit XML
// file for CI ingestion, and a plain-language console summary.
package reporting

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/banglastudy/dataqc/internal/models"
)

// WriteJSON writes the full analysis as an indented JSON artifact.
func WriteJSON(path string, analysis *models.Analysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("reporting: marshaling analysis: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("reporting: writing %s: %w", path, err)
	}
	return nil
}
