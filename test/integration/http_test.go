package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/salarycalc/salary-calculator/internal/calculation"
	"github.com/salarycalc/salary-calculator/internal/config"
	"github.com/salarycalc/salary-calculator/internal/domain"
	"github.com/salarycalc/salary-calculator/internal/server"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newHTTPServer(t *testing.T, rulesFile string) *httptest.Server {
	t.Helper()
	cfg := config.DefaultServerConfig()
	cfg.GinMode = "test"

	engine := calculation.NewCalculationEngine()
	if rulesFile != "" {
		rules, err := config.NewInputParser().LoadRulesFromFile(rulesFile)
		require.NoError(t, err)
		engine = calculation.NewCalculationEngineWithRules(*rules)
	}

	ts := httptest.NewServer(server.New(&cfg, engine, zaptest.NewLogger(t)).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTPCalculateFromFile(t *testing.T) {
	ts := newHTTPServer(t, "")

	body, err := os.ReadFile("../testdata/married_salary.json")
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/v1/calculate", "application/json", strings.NewReader(string(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(server.CorrelationIDHeader))

	var calc domain.Calculation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&calc))
	assert.Equal(t, domain.StatusMarried, calc.Input.MaritalStatus)
	assert.True(t, calc.TakeHome.PerPeriod.Equal(decimal.NewFromInt(8234)), "take-home: got %s", calc.TakeHome.PerPeriod)
}

func TestHTTPRulesFileApplies(t *testing.T) {
	ts := newHTTPServer(t, "../testdata/flat_rules.toml")

	resp, err := http.Post(ts.URL+"/api/v1/calculate?format=console-lite", "application/json",
		strings.NewReader(`{"amount":131000,"allowances":{"federal":1,"state":1}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Monthly Take-Home: $7,320")
	assert.Contains(t, string(data), "Budget (simple)")

	resp, err = http.Get(ts.URL + "/api/v1/brackets")
	require.NoError(t, err)
	defer resp.Body.Close()
	var brackets server.BracketsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&brackets))
	assert.Equal(t, "flat-simple", brackets.Rules)
	assert.Equal(t, domain.TaxModeFlat, brackets.TaxMode)
}

func TestHTTPPageRoundTrip(t *testing.T) {
	ts := newHTTPServer(t, "")

	resp, err := http.Get(ts.URL + "/?type=hourly&amount=15&hours=40&frequency=bi-weekly&status=single")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "$955")
	assert.Contains(t, page, `<option value="bi-weekly" selected>Bi-weekly</option>`)
	assert.Contains(t, page, `value="hourly" checked`)
}
