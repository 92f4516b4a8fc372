package controllers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/docdrift/internal/domain/commands"
	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/infrastructure/repositories/render"
)

// AnalyzeController handles the root command: one drift-analysis run over a
// local repository.
type AnalyzeController struct {
	command   commands.Analyze
	renderers *render.Registry
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(command commands.Analyze, renderers *render.Registry) *AnalyzeController {
	return &AnalyzeController{command: command, renderers: renderers}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "docdrift [path]",
		Short: "Detect documentation drift in a Git repository",
		Long: `Analyze the changes between two revisions of a local Git repository
and report places where the documentation no longer matches the code.

The revision range can be given explicitly (--from/--to), as a single
base (--since or --branch), or left to the default HEAD~1..HEAD.

Configuration precedence: command-line flags > environment variables >
config file > built-in defaults.`,
	}
}

// Run performs the analysis and reports the outcome as an error so the caller
// can translate critical findings into the process exit code.
func (it *AnalyzeController) Run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := it.loadSettings(cmd, args)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(ctx, settings)
	if err != nil {
		return err
	}

	renderer, err := it.renderers.Get(settings.Output.Format)
	if err != nil {
		return err
	}
	output, err := renderer.Render(report)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output)

	if settings.Output.SaveReport {
		if _, saveErr := render.SaveReport(report, renderer, settings.Output.ReportPath); saveErr != nil {
			return saveErr
		}
	}

	if report.HasCriticalIssues() {
		return entities.ErrCriticalIssues
	}
	return nil
}

// loadSettings builds the run configuration: defaults and config file and
// environment first, then explicit flag overrides on top.
func (it *AnalyzeController) loadSettings(cmd *cobra.Command, args []string) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, findErr := entities.FindConfigFile(); findErr == nil {
			configPath = found
			logger.Infof("Using config file: %s", configPath)
		} else {
			logger.Debug("No config file found, using defaults")
		}
	}

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(settings, cmd)

	repoPath := "."
	if len(args) > 0 {
		repoPath = args[0]
	} else if flagRepo, _ := cmd.Flags().GetString("repo"); flagRepo != "" {
		repoPath = flagRepo
	}
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository path %q: %w", repoPath, err)
	}
	settings.RepoPath = absPath

	settings.Range = rangeFromFlags(cmd)
	if err = validateRange(settings.Range); err != nil {
		return nil, err
	}

	return settings, nil
}

// applyFlagOverrides overlays explicitly set flags onto the settings. Only
// flags the user actually changed participate, so the config file and
// environment keep their say otherwise.
func applyFlagOverrides(settings *entities.Settings, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("provider") {
		settings.LLM.Provider, _ = flags.GetString("provider")
	}
	if flags.Changed("model") {
		settings.LLM.Model, _ = flags.GetString("model")
	}
	if flags.Changed("base-url") {
		settings.LLM.BaseURL, _ = flags.GetString("base-url")
	}
	if flags.Changed("api-key") {
		settings.LLM.APIKey, _ = flags.GetString("api-key")
	}
	if flags.Changed("temperature") {
		settings.LLM.Temperature, _ = flags.GetFloat64("temperature")
	}

	if flags.Changed("severity-threshold") {
		raw, _ := flags.GetString("severity-threshold")
		if threshold, err := entities.ParseSeverity(raw); err == nil {
			settings.Analysis.SeverityThreshold = threshold
		} else {
			logger.Warnf("Ignoring invalid --severity-threshold %q", raw)
		}
	}

	if flags.Changed("output-format") {
		settings.Output.Format, _ = flags.GetString("output-format")
	}
	if flags.Changed("save-report") {
		settings.Output.SaveReport, _ = flags.GetBool("save-report")
	}
	if flags.Changed("report-path") {
		settings.Output.ReportPath, _ = flags.GetString("report-path")
	}
}

func rangeFromFlags(cmd *cobra.Command) entities.RangeSpec {
	flags := cmd.Flags()
	fromRef, _ := flags.GetString("from")
	toRef, _ := flags.GetString("to")
	since, _ := flags.GetString("since")
	branch, _ := flags.GetString("branch")
	return entities.RangeSpec{
		FromRef: fromRef,
		ToRef:   toRef,
		Since:   since,
		Branch:  branch,
	}
}

func validateRange(spec entities.RangeSpec) error {
	if (spec.FromRef == "") != (spec.ToRef == "") {
		return errors.New("--from and --to must be given together")
	}
	return nil
}

// AddFlags adds the analysis flags to the given Cobra command.
func (it *AnalyzeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("repo", "", "Path to the repository (default: current directory)")
	cmd.Flags().String("from", "", "Base revision of the range (requires --to)")
	cmd.Flags().String("to", "", "Target revision of the range (requires --from)")
	cmd.Flags().String("since", "", "Compare this revision against HEAD")
	cmd.Flags().String("branch", "", "Compare this branch against HEAD")
	cmd.Flags().String("provider", "", "LLM provider (ollama, openai, anthropic)")
	cmd.Flags().String("model", "", "Model name for the LLM provider")
	cmd.Flags().String("api-key", "", "API key for the LLM provider")
	cmd.Flags().String("base-url", "", "Base URL override for the LLM provider")
	cmd.Flags().Float64("temperature", 0, "Sampling temperature for suggestions")
	cmd.Flags().String("severity-threshold", "", "Minimum severity to report (low, medium, critical)")
	cmd.Flags().StringP("output-format", "o", "", "Output format (terminal, json, html)")
	cmd.Flags().Bool("save-report", false, "Persist the rendered report to disk")
	cmd.Flags().String("report-path", "", "Directory for saved reports")
}
