package prompt

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/internal/output"
)

// Session drives one interactive calculation: three validated prompts, the
// compounding engine, and the two-line result summary on the same stream
// the prompts were written to.
type Session struct {
	reader *Reader
	engine *calculation.Engine
	out    io.Writer

	// ShowSchedule appends the year-by-year balance after the summary.
	ShowSchedule bool
}

// NewSession creates a session over the given streams.
func NewSession(in io.Reader, out io.Writer, engine *calculation.Engine) *Session {
	return &Session{
		reader: NewReader(in, out),
		engine: engine,
		out:    out,
	}
}

// Run executes one full interactive calculation and returns the result.
// The only error path is an exhausted input stream; invalid entries are
// retried inside the prompt loops and never surface here.
func (s *Session) Run() (domain.Result, error) {
	principal, err := s.reader.Decimal(PromptPrincipal, &decimal.Zero)
	if err != nil {
		return domain.Result{}, err
	}
	rate, err := s.reader.Decimal(PromptRate, nil)
	if err != nil {
		return domain.Result{}, err
	}
	periods, err := s.reader.Int(PromptPeriods, 0)
	if err != nil {
		return domain.Result{}, err
	}

	res := s.engine.Run(domain.Scenario{
		Principal:         principal,
		AnnualRatePercent: rate,
		Periods:           periods,
	})

	if err := output.RenderRun(s.out, res); err != nil {
		return res, err
	}
	if s.ShowSchedule {
		if err := output.RenderSchedule(s.out, res); err != nil {
			return res, err
		}
	}
	return res, nil
}
