package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/infrastructure/controllers"
)

func buildRootCommand(analyzeController *controllers.AnalyzeController) *cobra.Command {
	bind := analyzeController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return analyzeController.Run(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	analyzeController.AddFlags(cmd)
	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject the controller via DIG
	analyzeController := injectAnalyzeController()
	cobraRoot := buildRootCommand(analyzeController)

	if err := cobraRoot.Execute(); err != nil {
		if errors.Is(err, entities.ErrCriticalIssues) {
			logger.Error("Critical documentation drift detected")
			os.Exit(1)
		}
		logger.Fatalf("Error executing 'docdrift': %s", err)
	}
}
