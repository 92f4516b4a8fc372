package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// suggestionSystemPrompt instructs the backend to answer with the structured
// JSON contract the synthesizer parses below.
const suggestionSystemPrompt = "You are a senior technical writer assisting developers in " +
	"keeping documentation aligned with code changes. " +
	"Analyze the provided change and documentation context. " +
	"Suggest concise, actionable documentation updates. " +
	"Respond as JSON with keys: summary (string), " +
	"severity (critical|medium|low), suggestion (string), " +
	"doc_excerpt (optional string)."

// fallbackSuggestion is the generic instruction used when the backend cannot
// produce a usable response.
const fallbackSuggestion = "Review and update related documentation accordingly."

// suggestionPayload is the structured response expected from the backend.
type suggestionPayload struct {
	Summary    string `json:"summary"`
	Severity   string `json:"severity"`
	Suggestion string `json:"suggestion"`
	DocExcerpt string `json:"doc_excerpt"`
}

// SuggestionSynthesizer turns drift candidates into final issues through one
// backend call per candidate. Any failure degrades to a deterministic local
// issue; this is the terminal error boundary of the pipeline and never
// raises.
type SuggestionSynthesizer struct {
	backend repositories.SuggestionRepository
}

// NewSuggestionSynthesizer creates a synthesizer bound to the given backend.
func NewSuggestionSynthesizer(backend repositories.SuggestionRepository) *SuggestionSynthesizer {
	return &SuggestionSynthesizer{backend: backend}
}

// Synthesize produces the issue for one candidate. At most one backend call
// is made; no retries.
func (it *SuggestionSynthesizer) Synthesize(
	ctx context.Context,
	candidate entities.DriftCandidate,
) entities.DriftIssue {
	user := buildUserPrompt(candidate)

	raw, err := it.backend.Generate(ctx, suggestionSystemPrompt, user)
	if err != nil {
		logger.Warnf("Suggestion call failed for %s (%s). Using fallback.",
			candidate.Change.FilePath, candidate.Type)
		return it.fallbackIssue(candidate)
	}

	payload, parseErr := parseSuggestion(raw)
	if parseErr != nil {
		logger.Warnf("Unusable suggestion response for %s: %v. Using fallback.",
			candidate.Change.FilePath, parseErr)
		return it.fallbackIssue(candidate)
	}

	severity := entities.DefaultSeverity(candidate.Type)
	if parsed, sevErr := entities.ParseSeverity(payload.Severity); sevErr == nil {
		severity = parsed
	}

	return entities.DriftIssue{
		DriftType:            candidate.Type,
		Severity:             severity,
		FilePath:             candidate.Change.FilePath,
		Summary:              payload.Summary,
		Suggestion:           payload.Suggestion,
		CodeSnippet:          candidate.Change.CodeText(),
		DocumentationSnippet: payload.DocExcerpt,
		Metadata:             it.metadata(candidate, false),
	}
}

// fallbackIssue is the deterministic local degradation: same candidate in,
// byte-identical issue out, regardless of how the backend failed.
func (it *SuggestionSynthesizer) fallbackIssue(candidate entities.DriftCandidate) entities.DriftIssue {
	return entities.DriftIssue{
		DriftType:   candidate.Type,
		Severity:    entities.DefaultSeverity(candidate.Type),
		FilePath:    candidate.Change.FilePath,
		Summary:     candidate.Description,
		Suggestion:  fallbackSuggestion,
		CodeSnippet: candidate.Change.CodeText(),
		Metadata:    it.metadata(candidate, true),
	}
}

func (it *SuggestionSynthesizer) metadata(
	candidate entities.DriftCandidate,
	fallback bool,
) map[string]string {
	metadata := map[string]string{
		entities.MetadataProvider: it.backend.Name(),
	}
	if candidate.Change.Symbol != "" {
		metadata[entities.MetadataSymbol] = candidate.Change.Symbol
	}
	if fallback {
		metadata[entities.MetadataFallback] = "true"
	}
	return metadata
}

// buildUserPrompt renders the candidate into the structured request: drift
// type, code text (new preferred over old), documentation references with
// their changed flags, and the candidate description.
func buildUserPrompt(candidate entities.DriftCandidate) string {
	var docTexts []string
	var docChanged []string
	for _, ref := range candidate.Documentation {
		changed := "no"
		if ref.Changed {
			changed = "yes"
		}
		docChanged = append(docChanged, changed)
		docTexts = append(docTexts,
			fmt.Sprintf("%s (changed=%t):\n%s", ref.FilePath, ref.Changed, ref.Snippet))
	}
	if len(docTexts) == 0 {
		docTexts = append(docTexts, "No related documentation found.")
		docChanged = append(docChanged, "n/a")
	}

	codeText := candidate.Change.Summary
	if body := candidate.Change.CodeText(); body != "" {
		codeText += "\n\n" + body
	}

	return fmt.Sprintf(
		"Code change (type: %s):\n%s\n\nDocumentation references (changed=%s):\n%s\n\nWhy it matters: %s",
		candidate.Type,
		codeText,
		strings.Join(docChanged, ", "),
		strings.Join(docTexts, "\n\n---\n\n"),
		candidate.Description,
	)
}

// parseSuggestion extracts the JSON object from the raw response, tolerating
// fenced or chatty replies, and validates the required fields.
func parseSuggestion(raw string) (*suggestionPayload, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("malformed suggestion response: %w", err)
	}

	if payload.Summary == "" {
		return nil, fmt.Errorf("suggestion response missing summary")
	}
	if payload.Suggestion == "" {
		return nil, fmt.Errorf("suggestion response missing suggestion")
	}

	return &payload, nil
}
