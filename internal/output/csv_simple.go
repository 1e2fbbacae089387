package output

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/salarycalc/salary-calculator/internal/domain"
)

// CSVSummarizer implements the budget CSV output (one row per category, in plan order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(calc *domain.Calculation) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := WriteBudgetCSV(buf, calc.Budget, calc.TakeHome.Frequency); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteBudgetCSV writes one row per budget line. The Frequency column is
// omitted when frequency is empty, as for a bare take-home amount.
func WriteBudgetCSV(w io.Writer, lines []domain.BudgetLine, frequency domain.PayFrequency) error {
	cw := csv.NewWriter(w)
	header := []string{"Group", "Category", "Percent", "Amount"}
	if frequency != "" {
		header = append(header, "Frequency")
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, l := range lines {
		row := []string{
			l.Category.Group.Label(),
			l.Category.Name,
			l.Category.Percent.Mul(decimalHundred).String(),
			l.Amount.StringFixed(2),
		}
		if frequency != "" {
			row = append(row, string(frequency))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
