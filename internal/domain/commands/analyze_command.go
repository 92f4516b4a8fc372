package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/domain/repositories"
	llmRepo "github.com/rios0rios0/docdrift/internal/infrastructure/repositories/llm"
)

// suggestionConcurrency bounds the number of in-flight suggestion calls.
// Issue order in the report always matches candidate order regardless of
// completion order.
const suggestionConcurrency = 4

// Analyze is the interface for the analyze command (one drift-analysis run).
type Analyze interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.DriftReport, error)
}

// AnalyzeCommand orchestrates the full drift-analysis pipeline:
// extract code changes -> locate documentation -> generate candidates ->
// synthesize suggestions -> assemble the report.
type AnalyzeCommand struct {
	changes        repositories.ChangeRepository
	locatorFactory repositories.LocatorFactory
	llmRegistry    *llmRepo.Registry
}

// NewAnalyzeCommand creates a new AnalyzeCommand with the given collaborators.
func NewAnalyzeCommand(
	changes repositories.ChangeRepository,
	locatorFactory repositories.LocatorFactory,
	llmRegistry *llmRepo.Registry,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		changes:        changes,
		locatorFactory: locatorFactory,
		llmRegistry:    llmRegistry,
	}
}

// Execute runs one analysis over the configured revision range. The only
// fatal failures are revision resolution and repository state; every later
// stage degrades per candidate instead of aborting the run.
func (it *AnalyzeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.DriftReport, error) {
	logger.Infof("Analyzing %s (%s range)", settings.RepoPath, settings.Range.Mode())

	extraction, err := it.changes.Extract(ctx, settings.RepoPath, settings.Range)
	if err != nil {
		return nil, err
	}
	logger.Infof("Extracted %d code changes across %d files",
		len(extraction.Changes), len(extraction.ChangedPaths))

	locator := it.locatorFactory(settings.RepoPath, extraction.ChangedPaths)
	generator := NewCandidateGenerator(settings.Analysis.Policy())

	var candidates []entities.DriftCandidate
	for _, change := range extraction.Changes {
		refs := locator.Locate(change)
		if candidate, ok := generator.Generate(change, refs); ok {
			logger.Debugf("Candidate %s for %s %s",
				candidate.Type, change.FilePath, change.Symbol)
			candidates = append(candidates, candidate)
		}
	}
	logger.Infof("Generated %d drift candidates", len(candidates))

	backend, err := it.llmRegistry.Get(settings.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion backend: %w", err)
	}
	synthesizer := NewSuggestionSynthesizer(backend)

	// Index-addressed so the final order equals candidate-generation order.
	issues := make([]entities.DriftIssue, len(candidates))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(suggestionConcurrency)
	for i, candidate := range candidates {
		group.Go(func() error {
			issues[i] = synthesizer.Synthesize(groupCtx, candidate)
			return nil
		})
	}
	_ = group.Wait() // Synthesize never fails; failures became fallback issues.

	report := entities.NewDriftReport(issues, settings.Analysis.SeverityThreshold, extraction.Metadata)
	logger.Infof("Report contains %d issues at or above %q",
		len(report.Issues), settings.Analysis.SeverityThreshold)
	return report, nil
}
