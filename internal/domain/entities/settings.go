package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LLMSettings configures the suggestion-generator backend.
type LLMSettings struct {
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"` // Inline or ${ENV_VAR}
	Temperature float64 `yaml:"temperature"`
}

// AnalysisSettings configures candidate generation and report filtering.
type AnalysisSettings struct {
	SeverityThreshold    Severity `yaml:"severity_threshold"`
	IgnorePrivateSymbols bool     `yaml:"ignore_private_symbols"`
	CheckExamples        bool     `yaml:"check_examples"`
	CheckInlineComments  bool     `yaml:"check_inline_comments"`
}

// Policy collapses the analysis settings into the policy value consumed by
// the engine.
func (a AnalysisSettings) Policy() AnalysisPolicy {
	return AnalysisPolicy{
		IgnorePrivateSymbols: a.IgnorePrivateSymbols,
		CheckExamples:        a.CheckExamples,
		CheckInlineComments:  a.CheckInlineComments,
		SeverityThreshold:    a.SeverityThreshold,
	}
}

// OutputSettings configures how the final report is rendered and persisted.
type OutputSettings struct {
	Format     string `yaml:"format"`
	SaveReport bool   `yaml:"save_report"`
	ReportPath string `yaml:"report_path"`
}

// Settings is the single explicit configuration value handed to the engine at
// construction time. The engine never reads ambient global state.
type Settings struct {
	RepoPath string           `yaml:"-"`
	Range    RangeSpec        `yaml:"-"`
	LLM      LLMSettings      `yaml:"llm"`
	Analysis AnalysisSettings `yaml:"analysis"`
	Output   OutputSettings   `yaml:"output"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the built-in defaults: a local Ollama backend and
// every analysis check enabled at the lowest threshold.
func DefaultSettings() *Settings {
	return &Settings{
		LLM: LLMSettings{
			Provider:    "ollama",
			Model:       "llama3.1",
			Temperature: 0,
		},
		Analysis: AnalysisSettings{
			SeverityThreshold:    SeverityLow,
			IgnorePrivateSymbols: true,
			CheckExamples:        true,
			CheckInlineComments:  true,
		},
		Output: OutputSettings{
			Format:     "terminal",
			SaveReport: false,
			ReportPath: "./drift_reports",
		},
	}
}

// fileSettings mirrors Settings with optional booleans so that a config file
// can leave defaults untouched.
type fileSettings struct {
	LLM struct {
		Provider    string   `yaml:"provider"`
		Model       string   `yaml:"model"`
		BaseURL     string   `yaml:"base_url"`
		APIKey      string   `yaml:"api_key"`
		Temperature *float64 `yaml:"temperature"`
	} `yaml:"llm"`
	Analysis struct {
		SeverityThreshold    string `yaml:"severity_threshold"`
		IgnorePrivateSymbols *bool  `yaml:"ignore_private_symbols"`
		CheckExamples        *bool  `yaml:"check_examples"`
		CheckInlineComments  *bool  `yaml:"check_inline_comments"`
	} `yaml:"analysis"`
	Output struct {
		Format     string `yaml:"format"`
		SaveReport *bool  `yaml:"save_report"`
		ReportPath string `yaml:"report_path"`
	} `yaml:"output"`
}

// NewSettings builds the run configuration: defaults, overlaid by the config
// file when path is non-empty, overlaid by environment variables. API keys
// support ${ENV_VAR} references and token-file paths.
func NewSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		if err := applyConfigFile(settings, path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(settings)
	settings.LLM.APIKey = resolveSecret(settings.LLM.APIKey)

	if !settings.Analysis.SeverityThreshold.IsValid() {
		return nil, fmt.Errorf("invalid severity threshold: %q", settings.Analysis.SeverityThreshold)
	}

	return settings, nil
}

func applyConfigFile(settings *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var file fileSettings
	if unmarshalErr := yaml.Unmarshal(data, &file); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if file.LLM.Provider != "" {
		settings.LLM.Provider = file.LLM.Provider
	}
	if file.LLM.Model != "" {
		settings.LLM.Model = file.LLM.Model
	}
	if file.LLM.BaseURL != "" {
		settings.LLM.BaseURL = file.LLM.BaseURL
	}
	if file.LLM.APIKey != "" {
		settings.LLM.APIKey = file.LLM.APIKey
	}
	if file.LLM.Temperature != nil {
		settings.LLM.Temperature = *file.LLM.Temperature
	}

	if file.Analysis.SeverityThreshold != "" {
		threshold, parseErr := ParseSeverity(file.Analysis.SeverityThreshold)
		if parseErr != nil {
			return parseErr
		}
		settings.Analysis.SeverityThreshold = threshold
	}
	if file.Analysis.IgnorePrivateSymbols != nil {
		settings.Analysis.IgnorePrivateSymbols = *file.Analysis.IgnorePrivateSymbols
	}
	if file.Analysis.CheckExamples != nil {
		settings.Analysis.CheckExamples = *file.Analysis.CheckExamples
	}
	if file.Analysis.CheckInlineComments != nil {
		settings.Analysis.CheckInlineComments = *file.Analysis.CheckInlineComments
	}

	if file.Output.Format != "" {
		settings.Output.Format = file.Output.Format
	}
	if file.Output.SaveReport != nil {
		settings.Output.SaveReport = *file.Output.SaveReport
	}
	if file.Output.ReportPath != "" {
		settings.Output.ReportPath = file.Output.ReportPath
	}

	return nil
}

// applyEnvOverrides overlays the environment variables recognized by the
// detector onto the settings.
func applyEnvOverrides(settings *Settings) {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		settings.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		settings.LLM.Model = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		settings.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		settings.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if temp, err := strconv.ParseFloat(v, 64); err == nil {
			settings.LLM.Temperature = temp
		} else {
			logger.Warnf("Ignoring invalid LLM_TEMPERATURE %q", v)
		}
	}

	if v := os.Getenv("SEVERITY_THRESHOLD"); v != "" {
		if threshold, err := ParseSeverity(v); err == nil {
			settings.Analysis.SeverityThreshold = threshold
		} else {
			logger.Warnf("Ignoring invalid SEVERITY_THRESHOLD %q", v)
		}
	}
	settings.Analysis.IgnorePrivateSymbols = envBool(
		os.Getenv("AUTO_IGNORE_PRIVATE_FUNCTIONS"), settings.Analysis.IgnorePrivateSymbols)
	settings.Analysis.CheckExamples = envBool(
		os.Getenv("CHECK_EXAMPLES"), settings.Analysis.CheckExamples)
	settings.Analysis.CheckInlineComments = envBool(
		os.Getenv("CHECK_INLINE_COMMENTS"), settings.Analysis.CheckInlineComments)

	if v := os.Getenv("OUTPUT_FORMAT"); v != "" {
		settings.Output.Format = v
	}
	settings.Output.SaveReport = envBool(os.Getenv("SAVE_REPORT"), settings.Output.SaveReport)
	if v := os.Getenv("REPORT_PATH"); v != "" {
		settings.Output.ReportPath = v
	}
}

// envBool parses a boolean environment value, falling back to the default
// when the variable is unset.
func envBool(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// resolveSecret expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the secret from the
// file.
func resolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read key file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read API key from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".docdrift.yaml",
		".docdrift.yml",
		"docdrift.yaml",
		"docdrift.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}
