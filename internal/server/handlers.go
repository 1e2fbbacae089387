package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/salarycalc/salary-calculator/internal/output"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// BudgetRequest allocates a periodic take-home without running the tax chain.
type BudgetRequest struct {
	TakeHome decimal.Decimal `json:"take_home"`
	Plan     string          `json:"plan,omitempty"`
}

// BudgetResponse is the body of POST /api/v1/budget
type BudgetResponse struct {
	Plan   string              `json:"plan"`
	Lines  []domain.BudgetLine `json:"lines"`
	Groups []domain.GroupTotal `json:"groups"`
}

// BracketsResponse is the body of GET /api/v1/brackets
type BracketsResponse struct {
	Rules   string                     `json:"rules"`
	TaxMode domain.TaxMode             `json:"tax_mode"`
	Federal domain.FederalTaxConfig    `json:"federal"`
	Local   domain.StateLocalTaxConfig `json:"state_local"`
	FICA    domain.FICATaxConfig       `json:"fica"`
}

var contentTypes = map[string]string{
	"txt":  "text/plain; charset=utf-8",
	"csv":  "text/csv; charset=utf-8",
	"html": "text/html; charset=utf-8",
	"json": "application/json; charset=utf-8",
}

// sendError logs the failure and writes a JSON error body.
func (s *Server) sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := GetCorrelationID(c)
	s.logger.Warn(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("correlation_id", correlationID),
	)
	_ = c.Error(err)
	c.JSON(statusCode, ErrorResponse{Error: message, CorrelationID: correlationID})
}

// statusFor maps invalid input to 400 and everything else to 500.
func statusFor(err error) int {
	if errors.Is(err, domain.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// calculate evaluates a JSON PayInput. ?format= renders the result through a
// report formatter instead of the raw JSON calculation.
func (s *Server) calculate(c *gin.Context) {
	var in domain.PayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error(), err)
		return
	}
	if err := s.parser.ValidatePayInput(&in); err != nil {
		s.sendError(c, statusFor(err), err.Error(), err)
		return
	}

	calc, err := s.engine.Calculate(c.Request.Context(), in)
	if err != nil {
		s.sendError(c, statusFor(err), err.Error(), err)
		return
	}

	format := strings.TrimSpace(c.Query("format"))
	if format == "" {
		c.JSON(http.StatusOK, calc)
		return
	}

	var buf bytes.Buffer
	if err := output.GenerateReport(&buf, calc, format); err != nil {
		if errors.Is(err, output.ErrUnsupportedFormat) {
			s.sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		s.sendError(c, http.StatusInternalServerError, "failed to render report", err)
		return
	}
	contentType, ok := contentTypes[output.ExtensionFor(format)]
	if !ok {
		contentType = contentTypes["txt"]
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (s *Server) budget(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error(), err)
		return
	}

	allocator := s.engine.Allocator
	if req.Plan != "" {
		plan, err := domain.BudgetPlanByName(req.Plan)
		if err != nil {
			s.sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		allocator = calculation.NewBudgetAllocator(plan)
	}

	lines := allocator.Allocate(req.TakeHome)
	c.JSON(http.StatusOK, BudgetResponse{
		Plan:   allocator.Plan.Name,
		Lines:  lines,
		Groups: calculation.GroupTotals(lines),
	})
}

func (s *Server) brackets(c *gin.Context) {
	rules := s.engine.Rules
	c.JSON(http.StatusOK, BracketsResponse{
		Rules:   rules.Name,
		TaxMode: rules.TaxMode,
		Federal: rules.FederalTax,
		Local:   rules.StateLocalTax,
		FICA:    rules.FICA,
	})
}

func (s *Server) assumptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assumptions": calculation.Assumptions(s.engine.Rules)})
}

// page renders the interactive calculator. Without an amount it shows only the form.
func (s *Server) page(c *gin.Context) {
	query := c.Request.URL.Query()
	form, formErr := formFromQuery(query)

	var buf bytes.Buffer
	status := http.StatusOK
	var calc *domain.Calculation

	if query.Has("amount") {
		err := formErr
		var in domain.PayInput
		if err == nil {
			in, err = payInputFromForm(form)
		}
		if err == nil {
			err = s.parser.ValidatePayInput(&in)
		}
		if err == nil {
			calc, err = s.engine.Calculate(c.Request.Context(), in)
		}
		if err != nil {
			s.logger.Warn("Rejected calculator form", zap.Error(err), zap.String("correlation_id", GetCorrelationID(c)))
			status = statusFor(err)
			if renderErr := output.RenderHTMLPage(&buf, nil, form, err.Error()); renderErr != nil {
				s.sendError(c, http.StatusInternalServerError, "failed to render page", renderErr)
				return
			}
			c.Data(status, contentTypes["html"], buf.Bytes())
			return
		}
	}

	if err := output.RenderHTMLPage(&buf, calc, form, ""); err != nil {
		s.sendError(c, http.StatusInternalServerError, "failed to render page", err)
		return
	}
	c.Data(status, contentTypes["html"], buf.Bytes())
}

// formFromQuery echoes the query back into the form. A malformed allowance
// count is reported after the form is filled so the page can still render it.
func formFromQuery(q url.Values) (*output.FormValues, error) {
	form := &output.FormValues{
		PayType:       q.Get("type"),
		Amount:        q.Get("amount"),
		HoursPerWeek:  q.Get("hours"),
		MaritalStatus: q.Get("status"),
		PayFrequency:  q.Get("frequency"),
		Frequencies:   domain.PayFrequencies,
	}
	if form.PayType == "" {
		form.PayType = string(domain.PayTypeSalary)
	}
	if form.MaritalStatus == "" {
		form.MaritalStatus = string(domain.StatusSingle)
	}
	if form.PayFrequency == "" {
		form.PayFrequency = string(domain.FrequencyMonthly)
	}
	switch strings.ToLower(q.Get("exempt")) {
	case "on", "true", "1", "yes":
		form.TaxExempt = true
	}

	var err error
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"federal", &form.Federal},
		{"state", &form.State},
		{"local", &form.Local},
	} {
		n, parseErr := parseCountField(f.name+" allowances", q.Get(f.name))
		if parseErr != nil {
			if err == nil {
				err = parseErr
			}
			continue
		}
		*f.dst = n
	}
	return form, err
}

func payInputFromForm(form *output.FormValues) (domain.PayInput, error) {
	amount, err := parseDecimalField("amount", form.Amount)
	if err != nil {
		return domain.PayInput{}, err
	}
	hours, err := parseDecimalField("hours", form.HoursPerWeek)
	if err != nil {
		return domain.PayInput{}, err
	}
	return domain.PayInput{
		PayType:       domain.PayType(form.PayType),
		Amount:        amount,
		HoursPerWeek:  hours,
		MaritalStatus: domain.MaritalStatus(form.MaritalStatus),
		Allowances:    domain.Allowances{Federal: form.Federal, State: form.State, Local: form.Local},
		TaxExempt:     form.TaxExempt,
		PayFrequency:  domain.PayFrequency(form.PayFrequency),
	}, nil
}

// parseDecimalField accepts "131,000" and "$131000" as well as plain numbers.
func parseDecimalField(name, raw string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", "$", "", " ", "").Replace(raw)
	if cleaned == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, name)
	}
	return d, nil
}

// parseCountField reads a whole, non-negative allowance count. Blank means zero.
func parseCountField(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a whole number", domain.ErrInvalidInput, name)
	}
	return n, nil
}
