//go:build integration || unit || test

// Package commanddoubles provides test doubles for the domain command
// interfaces.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/docdrift/internal/domain/commands"
	"github.com/rios0rios0/docdrift/internal/domain/entities"
)

// StubAnalyzeCommand implements commands.Analyze with a canned report.
type StubAnalyzeCommand struct {
	Report *entities.DriftReport
	Err    error

	// spy: settings received per call
	Calls []*entities.Settings
}

var _ commands.Analyze = (*StubAnalyzeCommand)(nil)

func (s *StubAnalyzeCommand) Execute(
	_ context.Context, settings *entities.Settings,
) (*entities.DriftReport, error) {
	s.Calls = append(s.Calls, settings)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Report, nil
}
