//go:build unit

package render_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/infrastructure/repositories/render"
)

func sampleReport() *entities.DriftReport {
	return entities.NewDriftReport([]entities.DriftIssue{
		{
			DriftType:   entities.DriftSignatureChange,
			Severity:    entities.SeverityCritical,
			FilePath:    "pkg/service.go",
			Summary:     "ProcessOrder gained a retries parameter",
			Suggestion:  "Document the new parameter",
			CodeSnippet: "func ProcessOrder(id string, retries int) error {",
			Metadata:    map[string]string{entities.MetadataProvider: "stub"},
		},
		{
			DriftType:  entities.DriftStaleInlineComment,
			Severity:   entities.SeverityLow,
			FilePath:   "pkg/cancel.go",
			Summary:    "Comment no longer matches",
			Suggestion: "Rewrite the comment",
			Metadata: map[string]string{
				entities.MetadataProvider: "stub",
				entities.MetadataFallback: "true",
			},
		},
	}, entities.SeverityLow, entities.RunMetadata{
		RepoPath:    "/repos/demo",
		FromRef:     "v1.0.0",
		ToRef:       "v2.0.0",
		GeneratedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})
}

func TestTerminalRenderer(t *testing.T) {
	color.NoColor = true

	t.Run("should list every issue with severity and paths", func(t *testing.T) {
		// when
		output, err := render.NewTerminalRenderer().Render(sampleReport())

		// then
		require.NoError(t, err)
		assert.Contains(t, output, "Found 2 issue(s)")
		assert.Contains(t, output, "[CRITICAL]")
		assert.Contains(t, output, "pkg/service.go")
		assert.Contains(t, output, "Document the new parameter")
		assert.Contains(t, output, "v1.0.0..v2.0.0")
		assert.Contains(t, output, "generated without LLM assistance")
	})

	t.Run("should celebrate an empty report", func(t *testing.T) {
		// given
		empty := entities.NewDriftReport(nil, entities.SeverityLow, entities.RunMetadata{})

		// when
		output, err := render.NewTerminalRenderer().Render(empty)

		// then
		require.NoError(t, err)
		assert.Contains(t, output, "No documentation drift detected.")
	})
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	t.Run("should produce parseable JSON with every issue", func(t *testing.T) {
		t.Parallel()

		// when
		output, err := render.NewJSONRenderer().Render(sampleReport())

		// then
		require.NoError(t, err)
		var decoded entities.DriftReport
		require.NoError(t, json.Unmarshal([]byte(output), &decoded))
		assert.Len(t, decoded.Issues, 2)
		assert.Equal(t, "/repos/demo", decoded.Metadata.RepoPath)
		assert.Equal(t, entities.DriftSignatureChange, decoded.Issues[0].DriftType)
	})
}

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()

	t.Run("should emit a standalone page with escaped content", func(t *testing.T) {
		t.Parallel()

		// given
		report := sampleReport()
		report.Issues[0].Summary = "uses <script> tags"

		// when
		output, err := render.NewHTMLRenderer().Render(report)

		// then
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(output, "<!DOCTYPE html>"))
		assert.Contains(t, output, "pkg/service.go")
		assert.NotContains(t, output, "<script>")
		assert.Contains(t, output, "&lt;script&gt;")
	})

	t.Run("should render the empty state", func(t *testing.T) {
		t.Parallel()

		// given
		empty := entities.NewDriftReport(nil, entities.SeverityLow, entities.RunMetadata{})

		// when
		output, err := render.NewHTMLRenderer().Render(empty)

		// then
		require.NoError(t, err)
		assert.Contains(t, output, "No documentation drift detected.")
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should resolve registered formats case-insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		registry := render.NewRegistry()
		registry.Register(render.NewJSONRenderer())

		// when
		renderer, err := registry.Get("JSON")

		// then
		require.NoError(t, err)
		assert.Equal(t, "json", renderer.Name())
	})

	t.Run("should list the known formats in the error for unknown ones", func(t *testing.T) {
		t.Parallel()

		// given
		registry := render.NewRegistry()
		registry.Register(render.NewTerminalRenderer())
		registry.Register(render.NewJSONRenderer())

		// when
		_, err := registry.Get("yaml")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "json, terminal")
	})
}

func TestSaveReport(t *testing.T) {
	t.Parallel()

	t.Run("should write the rendered report under the target directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := filepath.Join(t.TempDir(), "reports")

		// when
		path, err := render.SaveReport(sampleReport(), render.NewJSONRenderer(), dir)

		// then
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filepath.Base(path), "drift_report_"))
		assert.True(t, strings.HasSuffix(path, ".json"))
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "pkg/service.go")
	})
}
