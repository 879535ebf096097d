package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/riskibarqy/football-results/internal/config"
	"github.com/riskibarqy/football-results/internal/domain/teamstats"
	"github.com/riskibarqy/football-results/internal/infrastructure/csvsource"
	"github.com/riskibarqy/football-results/internal/interfaces/report"
	"github.com/riskibarqy/football-results/internal/platform/logging"
	"github.com/riskibarqy/football-results/internal/usecase"
)

// NewStatisticsService wires the CSV sources under cfg.DataDir into the
// statistics pipeline. The former-names table is read eagerly.
func NewStatisticsService(cfg config.Config, logger *logging.Logger) (*usecase.StatisticsService, error) {
	if logger == nil {
		logger = logging.Default()
	}

	names, err := csvsource.LoadFormerNames(filepath.Join(cfg.DataDir, csvsource.FormerNamesFile))
	if err != nil {
		return nil, err
	}
	logger.Debug("former names loaded", "count", names.Len())

	renderer, err := newRenderer(cfg.ReportFormat)
	if err != nil {
		return nil, err
	}

	loader := csvsource.NewLoader(cfg.DataDir, names, logger)
	return usecase.NewStatisticsService(loader, teamstats.NewDefaultCalculator(), renderer, logger), nil
}

func newRenderer(format string) (usecase.ReportRenderer, error) {
	switch format {
	case config.ReportMarkdown, "":
		return report.NewMarkdown(), nil
	case config.ReportJSON:
		return report.NewJSON(), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// Run builds the pipeline from cfg and writes the report to out.
func Run(ctx context.Context, cfg config.Config, logger *logging.Logger, out io.Writer) error {
	service, err := NewStatisticsService(cfg, logger)
	if err != nil {
		return err
	}
	return service.Run(ctx, out)
}
