package repositories

import (
	"github.com/rios0rios0/docdrift/internal/domain/entities"
)

// RendererRepository turns a finished report into one concrete output format.
type RendererRepository interface {
	// Name returns the format identifier (e.g. "terminal", "json", "html").
	Name() string

	// FileExtension returns the extension used when persisting the output.
	FileExtension() string

	Render(report *entities.DriftReport) (string, error)
}
