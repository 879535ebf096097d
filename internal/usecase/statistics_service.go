package usecase

import (
	"context"
	"io"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-results/internal/domain/match"
	"github.com/riskibarqy/football-results/internal/domain/teamstats"
	"github.com/riskibarqy/football-results/internal/platform/logging"
)

// ReportRenderer writes per-team statistics to w.
type ReportRenderer interface {
	Render(w io.Writer, teams map[string]*teamstats.Stats) error
}

// StatisticsService runs the load, accumulate and render stages in order.
type StatisticsService struct {
	loader     match.Loader
	calculator teamstats.Calculator
	renderer   ReportRenderer
	logger     *logging.Logger
}

func NewStatisticsService(
	loader match.Loader,
	calculator teamstats.Calculator,
	renderer ReportRenderer,
	logger *logging.Logger,
) *StatisticsService {
	if calculator == nil {
		calculator = teamstats.NewDefaultCalculator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StatisticsService{
		loader:     loader,
		calculator: calculator,
		renderer:   renderer,
		logger:     logger.Named("StatisticsService"),
	}
}

// Process loads every match and feeds it to the calculator. Any load error
// aborts the run; there is no partial result.
func (s *StatisticsService) Process(ctx context.Context) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Process")
	defer func() { endUsecaseSpan(span, err) }()

	if s.loader == nil {
		return crerr.New("statistics service has no loader")
	}

	matches, err := s.loadMatches(ctx)
	if err != nil {
		return err
	}

	_, accumulateSpan := startUsecaseSpan(ctx, "usecase.StatisticsService.Accumulate")
	for _, item := range matches {
		s.calculator.Update(item)
	}
	endUsecaseSpan(accumulateSpan, nil)

	s.logger.InfoContext(ctx, "results processed",
		"matches", len(matches),
		"teams", len(s.calculator.TeamStats()),
	)
	return nil
}

func (s *StatisticsService) loadMatches(ctx context.Context) (matches []match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Load")
	defer func() { endUsecaseSpan(span, err) }()

	matches, err = s.loader.LoadMatches(ctx)
	if err != nil {
		return nil, crerr.Wrap(err, "load matches")
	}
	return matches, nil
}

// Report renders the current aggregates.
func (s *StatisticsService) Report(ctx context.Context, w io.Writer) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Report")
	defer func() { endUsecaseSpan(span, err) }()

	if s.renderer == nil {
		return crerr.New("statistics service has no renderer")
	}

	teams := s.calculator.TeamStats()
	if err := s.renderer.Render(w, teams); err != nil {
		return crerr.Wrap(err, "render report")
	}
	s.logger.DebugContext(ctx, "report rendered", "teams", len(teams))
	return nil
}

// Run processes the data set and writes the report.
func (s *StatisticsService) Run(ctx context.Context, w io.Writer) error {
	if err := s.Process(ctx); err != nil {
		return err
	}
	return s.Report(ctx, w)
}
