package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// Result labels. The internal padding differs between the two on purpose;
// downstream consumers match on the exact bytes, so keep them verbatim.
const (
	labelPrincipal = "Initial Principal: "
	labelFuture    = "Future Value:    "
)

// RenderRun writes the fixed two-line summary for a single result.
func RenderRun(w io.Writer, res domain.Result) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", labelPrincipal, FormatCurrency(res.Scenario.Principal)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s%s\n", labelFuture, FormatCurrency(res.FutureValue))
	return err
}

// RenderSchedule writes the year-by-year balance, one line per period.
func RenderSchedule(w io.Writer, res domain.Result) error {
	for _, yv := range res.Schedule {
		if _, err := fmt.Fprintf(w, "Year %d: %s\n", yv.Year, FormatCurrency(yv.Value)); err != nil {
			return err
		}
	}
	return nil
}

// ConsoleFormatter renders each result as the two-line summary, prefixed by
// the scenario name when one is set (batch files name their scenarios;
// interactive runs do not).
type ConsoleFormatter struct {
	// ShowSchedule appends the year-by-year balance after each summary.
	ShowSchedule bool
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results []domain.Result) ([]byte, error) {
	var buf bytes.Buffer
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		if res.Scenario.Name != "" {
			fmt.Fprintf(&buf, "%s\n", res.Scenario.Name)
		}
		if err := RenderRun(&buf, res); err != nil {
			return nil, err
		}
		if c.ShowSchedule {
			if err := RenderSchedule(&buf, res); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}
