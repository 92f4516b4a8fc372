//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// GenerateCall records a single invocation of Generate.
type GenerateCall struct {
	System string
	User   string
}

// SpySuggestionRepository implements repositories.SuggestionRepository as a
// configurable spy. It is safe for concurrent use: the synthesizer fans calls
// out across goroutines.
type SpySuggestionRepository struct {
	// --- identity ---
	BackendName string

	// --- Generate ---
	Response     string
	ResponseFunc func(system, user string) (string, error)
	Err          error

	// spy: calls received
	mu    sync.Mutex
	Calls []GenerateCall
}

var _ repositories.SuggestionRepository = (*SpySuggestionRepository)(nil)

func (s *SpySuggestionRepository) Name() string {
	if s.BackendName == "" {
		return "spy"
	}
	return s.BackendName
}

func (s *SpySuggestionRepository) Generate(_ context.Context, system, user string) (string, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, GenerateCall{System: system, User: user})
	s.mu.Unlock()

	if s.ResponseFunc != nil {
		return s.ResponseFunc(system, user)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

// CallCount returns the number of Generate invocations seen so far.
func (s *SpySuggestionRepository) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}
