//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
)

func TestNewDriftReport(t *testing.T) {
	t.Parallel()

	issues := []entities.DriftIssue{
		{FilePath: "a.go", Severity: entities.SeverityLow},
		{FilePath: "b.go", Severity: entities.SeverityCritical},
		{FilePath: "c.go", Severity: entities.SeverityMedium},
	}

	t.Run("should keep every issue at the lowest threshold", func(t *testing.T) {
		t.Parallel()

		// when
		report := entities.NewDriftReport(issues, entities.SeverityLow, entities.RunMetadata{})

		// then
		assert.Len(t, report.Issues, 3)
	})

	t.Run("should drop issues below the threshold preserving order", func(t *testing.T) {
		t.Parallel()

		// when
		report := entities.NewDriftReport(issues, entities.SeverityMedium, entities.RunMetadata{})

		// then
		assert.Len(t, report.Issues, 2)
		assert.Equal(t, "b.go", report.Issues[0].FilePath)
		assert.Equal(t, "c.go", report.Issues[1].FilePath)
	})

	t.Run("should be idempotent when re-assembled with the same threshold", func(t *testing.T) {
		t.Parallel()

		// given
		first := entities.NewDriftReport(issues, entities.SeverityMedium, entities.RunMetadata{})

		// when
		second := entities.NewDriftReport(first.Issues, entities.SeverityMedium, entities.RunMetadata{})

		// then
		assert.Equal(t, first.Issues, second.Issues)
	})

	t.Run("should stamp the generation time when missing", func(t *testing.T) {
		t.Parallel()

		// when
		report := entities.NewDriftReport(nil, entities.SeverityLow, entities.RunMetadata{})

		// then
		assert.False(t, report.Metadata.GeneratedAt.IsZero())
	})

	t.Run("should keep an explicit generation time", func(t *testing.T) {
		t.Parallel()

		// given
		stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		// when
		report := entities.NewDriftReport(nil, entities.SeverityLow,
			entities.RunMetadata{GeneratedAt: stamp})

		// then
		assert.Equal(t, stamp, report.Metadata.GeneratedAt)
	})
}

func TestDriftReportHasCriticalIssues(t *testing.T) {
	t.Parallel()

	t.Run("should detect a critical issue", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewDriftReport([]entities.DriftIssue{
			{Severity: entities.SeverityLow},
			{Severity: entities.SeverityCritical},
		}, entities.SeverityLow, entities.RunMetadata{})

		// then
		assert.True(t, report.HasCriticalIssues())
	})

	t.Run("should report false without critical issues", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewDriftReport([]entities.DriftIssue{
			{Severity: entities.SeverityMedium},
		}, entities.SeverityLow, entities.RunMetadata{})

		// then
		assert.False(t, report.HasCriticalIssues())
	})
}
