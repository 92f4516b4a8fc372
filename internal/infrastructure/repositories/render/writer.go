package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// reportFilePermissions keeps saved reports readable by the owner's group.
const reportFilePermissions = 0o644

// SaveReport renders the report with the given renderer and writes it under
// dir as drift_report_<timestamp><ext>, creating the directory if needed.
// It returns the full path of the written file.
func SaveReport(report *entities.DriftReport, renderer domainRepos.RendererRepository, dir string) (string, error) {
	output, err := renderer.Render(report)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("drift_report_%s%s",
		time.Now().Format("20060102_150405"), renderer.FileExtension())
	path := filepath.Join(dir, name)

	if err = os.WriteFile(path, []byte(output), reportFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write report to %s: %w", path, err)
	}

	logger.Infof("Report saved to %s", path)
	return path, nil
}
