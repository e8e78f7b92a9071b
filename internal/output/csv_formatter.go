package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/compound-calculator/internal/domain"
	moneydec "github.com/rpgo/compound-calculator/pkg/decimal"
)

// CSVFormatter emits one row per scenario year, with the scenario inputs
// repeated on every row so each line stands alone. The last row of a
// scenario carries its future value; zero-period scenarios get a single
// year-0 row where the value is the unchanged principal.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results []domain.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Principal", "AnnualRatePercent", "Periods", "Year", "Value"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, res := range results {
		base := []string{
			res.Scenario.Name,
			moneydec.NewMoneyFromDecimal(res.Scenario.Principal).String(),
			res.Scenario.AnnualRatePercent.String(),
			strconv.Itoa(res.Scenario.Periods),
		}
		if len(res.Schedule) == 0 {
			row := append(append([]string(nil), base...),
				"0", moneydec.NewMoneyFromDecimal(res.FutureValue).String())
			if err := w.Write(row); err != nil {
				return nil, err
			}
			continue
		}
		for _, yv := range res.Schedule {
			row := append(append([]string(nil), base...),
				strconv.Itoa(yv.Year), moneydec.NewMoneyFromDecimal(yv.Value).String())
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
