package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with SVG pie charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"whole": FormatWholeCurrency,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"share": func(f float64) string { return decimal.NewFromFloat(f).StringFixed(1) + "%" },
}).Parse(htmlTemplateSource))

// FormValues are the input fields echoed back by the interactive page.
type FormValues struct {
	PayType       string
	Amount        string
	HoursPerWeek  string
	MaritalStatus string
	Federal       int
	State         int
	Local         int
	TaxExempt     bool
	PayFrequency  string
	Frequencies   []domain.PayFrequency
}

// htmlGroup is a budget group with its lines for the template.
type htmlGroup struct {
	Total domain.GroupTotal
	Lines []domain.BudgetLine
}

// htmlPage is the template data. Calc is nil when the page only shows the form.
type htmlPage struct {
	Calc        *domain.Calculation
	Summary     Summary
	Assumptions []string
	SalaryPie   []PieSlice
	BudgetPie   []PieSlice
	Groups      []htmlGroup
	Form        *FormValues
	Error       string
}

func newHTMLPage(calc *domain.Calculation) htmlPage {
	page := htmlPage{Calc: calc}
	if calc == nil {
		return page
	}
	page.Summary = AnalyzeCalculation(calc)
	page.Assumptions = assumptionsFor(calc)

	labels := make([]string, 0, len(calc.SalaryBreakdown))
	values := make([]decimal.Decimal, 0, len(calc.SalaryBreakdown))
	for _, row := range calc.SalaryBreakdown {
		labels = append(labels, row.Label)
		values = append(values, row.Amount)
	}
	page.SalaryPie = PieSlices(labels, values, []string{"#D14D41", "#DA702C", "#879A39"}, 90)

	labels, values = nil, nil
	var colors []string
	for _, g := range calc.BudgetGroups {
		labels = append(labels, g.Group.Label())
		values = append(values, g.Amount)
		colors = append(colors, string(groupColors[string(g.Group)]))
		page.Groups = append(page.Groups, htmlGroup{Total: g, Lines: calculation.LinesForGroup(calc.Budget, g.Group)})
	}
	page.BudgetPie = PieSlices(labels, values, colors, 90)
	return page
}

func (h HTMLFormatter) Format(calc *domain.Calculation) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, newHTMLPage(calc)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderHTMLPage writes the interactive page: the input form, an optional error message
// and, when calc is non-nil, the full report.
func RenderHTMLPage(w io.Writer, calc *domain.Calculation, form *FormValues, errMsg string) error {
	page := newHTMLPage(calc)
	page.Form = form
	page.Error = errMsg
	return htmlTemplate.Execute(w, page)
}
