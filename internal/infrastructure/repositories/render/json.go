package render

import (
	"encoding/json"
	"fmt"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// JSONRenderer emits the report as indented JSON for machine consumption.
type JSONRenderer struct{}

var _ domainRepos.RendererRepository = (*JSONRenderer)(nil)

// NewJSONRenderer creates the JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (it *JSONRenderer) Name() string {
	return "json"
}

func (it *JSONRenderer) FileExtension() string {
	return ".json"
}

func (it *JSONRenderer) Render(report *entities.DriftReport) (string, error) {
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	return string(encoded) + "\n", nil
}
