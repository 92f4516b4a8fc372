//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
)

func TestNewSettings(t *testing.T) {
	t.Run("should use built-in defaults without a config file", func(t *testing.T) {
		// when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.Equal(t, "ollama", settings.LLM.Provider)
		assert.Equal(t, "llama3.1", settings.LLM.Model)
		assert.Equal(t, entities.SeverityLow, settings.Analysis.SeverityThreshold)
		assert.True(t, settings.Analysis.IgnorePrivateSymbols)
		assert.True(t, settings.Analysis.CheckExamples)
		assert.True(t, settings.Analysis.CheckInlineComments)
		assert.Equal(t, "terminal", settings.Output.Format)
		assert.False(t, settings.Output.SaveReport)
	})

	t.Run("should overlay values from the config file", func(t *testing.T) {
		// given
		configPath := filepath.Join(t.TempDir(), "docdrift.yaml")
		content := `
llm:
  provider: openai
  model: gpt-4o-mini
  temperature: 0.3
analysis:
  severity_threshold: medium
  check_examples: false
output:
  format: json
  save_report: true
  report_path: /tmp/reports
`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(configPath)

		// then
		require.NoError(t, err)
		assert.Equal(t, "openai", settings.LLM.Provider)
		assert.Equal(t, "gpt-4o-mini", settings.LLM.Model)
		assert.InDelta(t, 0.3, settings.LLM.Temperature, 0.0001)
		assert.Equal(t, entities.SeverityMedium, settings.Analysis.SeverityThreshold)
		assert.False(t, settings.Analysis.CheckExamples)
		assert.True(t, settings.Analysis.CheckInlineComments) // untouched default
		assert.Equal(t, "json", settings.Output.Format)
		assert.True(t, settings.Output.SaveReport)
		assert.Equal(t, "/tmp/reports", settings.Output.ReportPath)
	})

	t.Run("should let environment variables override the config file", func(t *testing.T) {
		// given
		configPath := filepath.Join(t.TempDir(), "docdrift.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("llm:\n  provider: openai\n"), 0o600))
		t.Setenv("LLM_PROVIDER", "anthropic")
		t.Setenv("LLM_MODEL", "claude-3-5-sonnet")
		t.Setenv("SEVERITY_THRESHOLD", "critical")
		t.Setenv("CHECK_INLINE_COMMENTS", "no")
		t.Setenv("SAVE_REPORT", "yes")

		// when
		settings, err := entities.NewSettings(configPath)

		// then
		require.NoError(t, err)
		assert.Equal(t, "anthropic", settings.LLM.Provider)
		assert.Equal(t, "claude-3-5-sonnet", settings.LLM.Model)
		assert.Equal(t, entities.SeverityCritical, settings.Analysis.SeverityThreshold)
		assert.False(t, settings.Analysis.CheckInlineComments)
		assert.True(t, settings.Output.SaveReport)
	})

	t.Run("should expand environment references in the API key", func(t *testing.T) {
		// given
		configPath := filepath.Join(t.TempDir(), "docdrift.yaml")
		require.NoError(t, os.WriteFile(configPath,
			[]byte("llm:\n  api_key: ${DOCDRIFT_TEST_KEY}\n"), 0o600))
		t.Setenv("DOCDRIFT_TEST_KEY", "sk-from-env")

		// when
		settings, err := entities.NewSettings(configPath)

		// then
		require.NoError(t, err)
		assert.Equal(t, "sk-from-env", settings.LLM.APIKey)
	})

	t.Run("should read the API key from a token file", func(t *testing.T) {
		// given
		dir := t.TempDir()
		tokenPath := filepath.Join(dir, "token")
		require.NoError(t, os.WriteFile(tokenPath, []byte("sk-from-file\n"), 0o600))
		configPath := filepath.Join(dir, "docdrift.yaml")
		require.NoError(t, os.WriteFile(configPath,
			[]byte("llm:\n  api_key: "+tokenPath+"\n"), 0o600))

		// when
		settings, err := entities.NewSettings(configPath)

		// then
		require.NoError(t, err)
		assert.Equal(t, "sk-from-file", settings.LLM.APIKey)
	})

	t.Run("should reject an unreadable config file", func(t *testing.T) {
		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})

	t.Run("should reject an invalid severity threshold", func(t *testing.T) {
		// given
		configPath := filepath.Join(t.TempDir(), "docdrift.yaml")
		require.NoError(t, os.WriteFile(configPath,
			[]byte("analysis:\n  severity_threshold: extreme\n"), 0o600))

		// when
		_, err := entities.NewSettings(configPath)

		// then
		require.Error(t, err)
	})
}
