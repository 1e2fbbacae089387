package output

import (
	"encoding/json"

	"github.com/salarycalc/salary-calculator/internal/domain"
)

// JSONFormatter serializes the calculation as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(calc *domain.Calculation) ([]byte, error) {
	return json.MarshalIndent(calc, "", "  ")
}
