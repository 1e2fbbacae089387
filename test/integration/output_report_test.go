package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"

	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/salarycalc/salary-calculator/internal/output"
)

func TestFormatters(t *testing.T) {
	d1 := stddec.NewFromFloat(123456.789)
	if got := output.FormatCurrency(d1); got != "$123,456.79" {
		t.Fatalf("FormatCurrency got %s", got)
	}
	if got := output.FormatWholeCurrency(stddec.NewFromFloat(7828.4)); got != "$7,828" {
		t.Fatalf("FormatWholeCurrency got %s", got)
	}
	// FormatPercentage expects the value already in percentage units (not a 0-1 fraction)
	d2 := stddec.NewFromFloat(20.645)
	if got := output.FormatPercentage(d2); got != "20.65%" {
		t.Fatalf("FormatPercentage got %s", got)
	}
	if got := output.FormatRate(stddec.NewFromFloat(0.15)); got != "15%" {
		t.Fatalf("FormatRate got %s", got)
	}
}

func TestSaveReport_WritesEveryFormat(t *testing.T) {
	in := domain.PayInput{
		PayType:       domain.PayTypeSalary,
		Amount:        stddec.NewFromInt(131000),
		MaritalStatus: domain.StatusSingle,
		Allowances:    domain.Allowances{Federal: 1, State: 1},
		PayFrequency:  domain.FrequencyMonthly,
	}
	calc, err := calculation.NewCalculationEngine().Calculate(context.Background(), in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	tmp := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		paths, err := output.SaveReport(calc, format, tmp)
		if err != nil {
			t.Fatalf("SaveReport %s error: %v", format, err)
		}
		if len(paths) != 1 {
			t.Fatalf("SaveReport %s: expected one path, got %v", format, paths)
		}
		if filepath.Dir(paths[0]) != tmp {
			t.Fatalf("SaveReport %s wrote outside %s: %s", format, tmp, paths[0])
		}
		fi, err := os.Stat(paths[0])
		if err != nil {
			t.Fatalf("expected file exists, err: %v", err)
		}
		if fi.Size() == 0 {
			t.Fatalf("%s: expected non-empty file", format)
		}
	}
}

func TestReportGenerator_ZeroSalary(t *testing.T) {
	// A zero salary must render in every format without dividing by zero
	in := domain.PayInput{
		PayType:       domain.PayTypeSalary,
		Amount:        stddec.Zero,
		MaritalStatus: domain.StatusSingle,
		PayFrequency:  domain.FrequencyWeekly,
	}
	calc, err := calculation.NewCalculationEngine().Calculate(context.Background(), in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	for _, format := range output.AvailableFormatterNames() {
		var sb strings.Builder
		if err := output.GenerateReport(&sb, calc, format); err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if sb.Len() == 0 {
			t.Fatalf("GenerateReport %s produced no output", format)
		}
	}
}
