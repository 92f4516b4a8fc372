package main

import (
	"github.com/rios0rios0/docdrift/internal"
	"github.com/rios0rios0/docdrift/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAnalyzeController() *controllers.AnalyzeController {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var analyzeController *controllers.AnalyzeController
	if err := container.Invoke(func(ac *controllers.AnalyzeController) {
		analyzeController = ac
	}); err != nil {
		panic(err)
	}

	return analyzeController
}
