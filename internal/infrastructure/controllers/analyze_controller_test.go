//go:build unit

package controllers_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/infrastructure/controllers"
	"github.com/rios0rios0/docdrift/internal/infrastructure/repositories/render"
	"github.com/rios0rios0/docdrift/test/domain/commanddoubles"
)

func testRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.Register(render.NewTerminalRenderer())
	registry.Register(render.NewJSONRenderer())
	return registry
}

// testCommand builds a Cobra command carrying the controller's flags with the
// given arguments already parsed.
func testCommand(t *testing.T, controller *controllers.AnalyzeController, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "docdrift"}
	cmd.PersistentFlags().StringP("config", "c", "", "")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "")
	controller.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	var buffer bytes.Buffer
	cmd.SetOut(&buffer)
	return cmd, &buffer
}

func emptyReport() *entities.DriftReport {
	return entities.NewDriftReport(nil, entities.SeverityLow, entities.RunMetadata{})
}

func TestAnalyzeControllerRun(t *testing.T) {
	t.Run("should render the report to the command output", func(t *testing.T) {
		// given
		command := &commanddoubles.StubAnalyzeCommand{Report: emptyReport()}
		controller := controllers.NewAnalyzeController(command, testRegistry())
		cmd, buffer := testCommand(t, controller, "--output-format", "json")

		// when
		err := controller.Run(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Contains(t, buffer.String(), `"issues"`)
	})

	t.Run("should resolve the positional path argument", func(t *testing.T) {
		// given
		command := &commanddoubles.StubAnalyzeCommand{Report: emptyReport()}
		controller := controllers.NewAnalyzeController(command, testRegistry())
		cmd, _ := testCommand(t, controller, "--output-format", "json")
		dir := t.TempDir()

		// when
		err := controller.Run(cmd, []string{dir})

		// then
		require.NoError(t, err)
		require.Len(t, command.Calls, 1)
		expected, _ := filepath.Abs(dir)
		assert.Equal(t, expected, command.Calls[0].RepoPath)
	})

	t.Run("should overlay explicit flags onto the settings", func(t *testing.T) {
		// given
		command := &commanddoubles.StubAnalyzeCommand{Report: emptyReport()}
		controller := controllers.NewAnalyzeController(command, testRegistry())
		cmd, _ := testCommand(t, controller,
			"--provider", "openai",
			"--model", "gpt-4o-mini",
			"--severity-threshold", "critical",
			"--from", "v1.0.0", "--to", "v2.0.0",
			"--output-format", "json")

		// when
		err := controller.Run(cmd, nil)

		// then
		require.NoError(t, err)
		require.Len(t, command.Calls, 1)
		settings := command.Calls[0]
		assert.Equal(t, "openai", settings.LLM.Provider)
		assert.Equal(t, "gpt-4o-mini", settings.LLM.Model)
		assert.Equal(t, entities.SeverityCritical, settings.Analysis.SeverityThreshold)
		assert.Equal(t, entities.RangeExplicit, settings.Range.Mode())
	})

	t.Run("should reject a lone --from flag", func(t *testing.T) {
		// given
		command := &commanddoubles.StubAnalyzeCommand{Report: emptyReport()}
		controller := controllers.NewAnalyzeController(command, testRegistry())
		cmd, _ := testCommand(t, controller, "--from", "v1.0.0")

		// when
		err := controller.Run(cmd, nil)

		// then
		require.Error(t, err)
		assert.Empty(t, command.Calls)
	})

	t.Run("should surface critical findings as the sentinel error", func(t *testing.T) {
		// given
		report := entities.NewDriftReport([]entities.DriftIssue{
			{Severity: entities.SeverityCritical, FilePath: "a.go"},
		}, entities.SeverityLow, entities.RunMetadata{})
		command := &commanddoubles.StubAnalyzeCommand{Report: report}
		controller := controllers.NewAnalyzeController(command, testRegistry())
		cmd, _ := testCommand(t, controller, "--output-format", "json")

		// when
		err := controller.Run(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrCriticalIssues)
	})

	t.Run("should save the report when asked to", func(t *testing.T) {
		// given
		reportDir := filepath.Join(t.TempDir(), "reports")
		command := &commanddoubles.StubAnalyzeCommand{Report: emptyReport()}
		controller := controllers.NewAnalyzeController(command, testRegistry())
		cmd, _ := testCommand(t, controller,
			"--output-format", "json",
			"--save-report",
			"--report-path", reportDir)

		// when
		err := controller.Run(cmd, nil)

		// then
		require.NoError(t, err)
		matches, globErr := filepath.Glob(filepath.Join(reportDir, "drift_report_*.json"))
		require.NoError(t, globErr)
		assert.Len(t, matches, 1)
	})

	t.Run("should fail for an unknown output format", func(t *testing.T) {
		// given
		command := &commanddoubles.StubAnalyzeCommand{Report: emptyReport()}
		controller := controllers.NewAnalyzeController(command, testRegistry())
		cmd, _ := testCommand(t, controller, "--output-format", "yaml")

		// when
		err := controller.Run(cmd, nil)

		// then
		require.Error(t, err)
	})
}
