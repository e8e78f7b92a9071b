package output

import (
	"encoding/json"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// JSONFormatter serializes the results as pretty-printed JSON, schedules
// included.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results []domain.Result) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
