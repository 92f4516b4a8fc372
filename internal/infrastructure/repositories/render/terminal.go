package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// TerminalRenderer writes a human-readable, color-coded report for the
// console. This is the default output format.
type TerminalRenderer struct{}

var _ domainRepos.RendererRepository = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates the console renderer.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

func (it *TerminalRenderer) Name() string {
	return "terminal"
}

func (it *TerminalRenderer) FileExtension() string {
	return ".txt"
}

// Render formats the report issue by issue, most useful information first.
func (it *TerminalRenderer) Render(report *entities.DriftReport) (string, error) {
	var builder strings.Builder

	header := color.New(color.Bold)
	builder.WriteString(header.Sprint("Documentation Drift Report"))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Repository: %s\n", report.Metadata.RepoPath))
	builder.WriteString(fmt.Sprintf("Range: %s\n", describeRange(report.Metadata)))
	builder.WriteString(fmt.Sprintf("Generated: %s\n\n",
		report.Metadata.GeneratedAt.Format("2006-01-02 15:04:05 MST")))

	if len(report.Issues) == 0 {
		builder.WriteString(color.GreenString("No documentation drift detected."))
		builder.WriteString("\n")
		return builder.String(), nil
	}

	builder.WriteString(fmt.Sprintf("Found %d issue(s):\n\n", len(report.Issues)))
	for i, issue := range report.Issues {
		builder.WriteString(fmt.Sprintf("%d. %s %s %s\n",
			i+1, severityTag(issue.Severity), issue.DriftType, color.CyanString(issue.FilePath)))
		builder.WriteString(fmt.Sprintf("   %s\n", issue.Summary))
		builder.WriteString(fmt.Sprintf("   Suggestion: %s\n", issue.Suggestion))
		if snippet := indentSnippet(issue.CodeSnippet); snippet != "" {
			builder.WriteString("   Code:\n")
			builder.WriteString(snippet)
		}
		if snippet := indentSnippet(issue.DocumentationSnippet); snippet != "" {
			builder.WriteString("   Documentation:\n")
			builder.WriteString(snippet)
		}
		if issue.GeneratedByFallback() {
			builder.WriteString(color.YellowString("   (suggestion generated without LLM assistance)"))
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func severityTag(severity entities.Severity) string {
	label := strings.ToUpper(string(severity))
	switch severity {
	case entities.SeverityCritical:
		return color.New(color.FgRed, color.Bold).Sprintf("[%s]", label)
	case entities.SeverityMedium:
		return color.YellowString("[%s]", label)
	default:
		return color.WhiteString("[%s]", label)
	}
}

func describeRange(metadata entities.RunMetadata) string {
	switch {
	case metadata.FromRef != "" && metadata.ToRef != "":
		return fmt.Sprintf("%s..%s", metadata.FromRef, metadata.ToRef)
	case metadata.Since != "":
		return fmt.Sprintf("%s..HEAD", metadata.Since)
	case metadata.Branch != "":
		return fmt.Sprintf("%s..HEAD", metadata.Branch)
	default:
		return "HEAD~1..HEAD"
	}
}

// indentSnippet caps the snippet at a few lines so the console stays readable.
func indentSnippet(snippet string) string {
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		return ""
	}

	const maxLines = 6
	lines := strings.Split(snippet, "\n")
	truncated := false
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		truncated = true
	}

	var builder strings.Builder
	for _, line := range lines {
		builder.WriteString("      " + line + "\n")
	}
	if truncated {
		builder.WriteString("      ...\n")
	}
	return builder.String()
}
