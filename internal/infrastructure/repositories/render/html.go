package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// htmlReportTemplate is a single self-contained page, no external assets.
const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Documentation Drift Report</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 60rem; color: #1f2430; }
  h1 { font-size: 1.5rem; }
  .meta { color: #5c6370; margin-bottom: 1.5rem; }
  .issue { border: 1px solid #d8dce4; border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
  .severity { display: inline-block; padding: 0.1rem 0.5rem; border-radius: 4px; font-size: 0.8rem; font-weight: 600; text-transform: uppercase; }
  .severity.critical { background: #fde8e8; color: #b42318; }
  .severity.medium { background: #fef4e6; color: #b25e09; }
  .severity.low { background: #eef1f5; color: #475467; }
  .path { font-family: monospace; color: #175cd3; }
  pre { background: #f6f8fa; padding: 0.75rem; border-radius: 4px; overflow-x: auto; font-size: 0.85rem; }
  .fallback { color: #b25e09; font-size: 0.85rem; }
  .empty { color: #067647; font-weight: 600; }
</style>
</head>
<body>
<h1>Documentation Drift Report</h1>
<div class="meta">
  <div>Repository: <span class="path">{{.Report.Metadata.RepoPath}}</span></div>
  <div>Range: {{.Range}}</div>
  <div>Generated: {{.Report.Metadata.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</div>
</div>
{{if .Report.Issues}}
{{range .Report.Issues}}
<div class="issue">
  <div>
    <span class="severity {{.Severity}}">{{.Severity}}</span>
    <strong>{{.DriftType}}</strong>
    <span class="path">{{.FilePath}}</span>
  </div>
  <p>{{.Summary}}</p>
  <p><em>Suggestion:</em> {{.Suggestion}}</p>
  {{if .CodeSnippet}}<pre>{{.CodeSnippet}}</pre>{{end}}
  {{if .DocumentationSnippet}}<pre>{{.DocumentationSnippet}}</pre>{{end}}
  {{if .GeneratedByFallback}}<div class="fallback">Suggestion generated without LLM assistance.</div>{{end}}
</div>
{{end}}
{{else}}
<p class="empty">No documentation drift detected.</p>
{{end}}
</body>
</html>
`

// HTMLRenderer emits a standalone HTML page suitable for sharing or CI
// artifact upload.
type HTMLRenderer struct {
	template *template.Template
}

var _ domainRepos.RendererRepository = (*HTMLRenderer)(nil)

// NewHTMLRenderer creates the HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		template: template.Must(template.New("report").Parse(htmlReportTemplate)),
	}
}

func (it *HTMLRenderer) Name() string {
	return "html"
}

func (it *HTMLRenderer) FileExtension() string {
	return ".html"
}

func (it *HTMLRenderer) Render(report *entities.DriftReport) (string, error) {
	var builder strings.Builder
	data := struct {
		Report *entities.DriftReport
		Range  string
	}{
		Report: report,
		Range:  describeRange(report.Metadata),
	}
	if err := it.template.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return builder.String(), nil
}
