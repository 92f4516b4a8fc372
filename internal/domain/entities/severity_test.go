//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	t.Run("should parse known levels regardless of case", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := map[string]entities.Severity{
			"low":      entities.SeverityLow,
			"Medium":   entities.SeverityMedium,
			"CRITICAL": entities.SeverityCritical,
			" low ":    entities.SeverityLow,
		}

		for input, expected := range inputs {
			// when
			severity, err := entities.ParseSeverity(input)

			// then
			require.NoError(t, err)
			assert.Equal(t, expected, severity)
		}
	})

	t.Run("should return error for unknown level", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseSeverity("catastrophic")

		// then
		require.Error(t, err)
	})
}

func TestSeverityAtLeast(t *testing.T) {
	t.Parallel()

	t.Run("should order low below medium below critical", func(t *testing.T) {
		t.Parallel()

		// then
		assert.True(t, entities.SeverityCritical.AtLeast(entities.SeverityLow))
		assert.True(t, entities.SeverityCritical.AtLeast(entities.SeverityMedium))
		assert.True(t, entities.SeverityMedium.AtLeast(entities.SeverityLow))
		assert.False(t, entities.SeverityLow.AtLeast(entities.SeverityMedium))
		assert.False(t, entities.SeverityMedium.AtLeast(entities.SeverityCritical))
	})

	t.Run("should treat equal levels as at least", func(t *testing.T) {
		t.Parallel()

		// then
		assert.True(t, entities.SeverityMedium.AtLeast(entities.SeverityMedium))
	})
}

func TestDefaultSeverity(t *testing.T) {
	t.Parallel()

	t.Run("should map removal drift to critical", func(t *testing.T) {
		t.Parallel()

		// then
		assert.Equal(t, entities.SeverityCritical,
			entities.DefaultSeverity(entities.DriftRemovedWithoutDocUpdate))
	})

	t.Run("should map stale inline comments to low", func(t *testing.T) {
		t.Parallel()

		// then
		assert.Equal(t, entities.SeverityLow,
			entities.DefaultSeverity(entities.DriftStaleInlineComment))
	})

	t.Run("should map every other drift type to medium", func(t *testing.T) {
		t.Parallel()

		// given
		others := []entities.DriftType{
			entities.DriftSignatureChange,
			entities.DriftBehaviorChange,
			entities.DriftMissingExampleUpdate,
			entities.DriftUndocumentedAddition,
		}

		for _, driftType := range others {
			// then
			assert.Equal(t, entities.SeverityMedium, entities.DefaultSeverity(driftType))
		}
	})
}
