package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apeftrust/investment-calculator/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *ProjectionHandler {
	return NewProjectionHandler(calculation.NewProjectionEngine(), nil)
}

func post(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestProjectHandler_OK(t *testing.T) {
	handler := newTestHandler()
	w := post(t, handler.Project, "/projection", `{
		"principal": 1000000,
		"annual_growth_rate": 0.16,
		"start_date": "2025-01-01",
		"end_date": "2025-12-31",
		"period": "monthly"
	}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Summary struct {
			Days              int    `json:"days"`
			FinalClosingValue string `json:"final_closing_value"`
			FeeTotals         []struct {
				Name string `json:"name"`
			} `json:"fee_totals"`
		} `json:"summary"`
		Period  string            `json:"period"`
		Records []json.RawMessage `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 365, resp.Summary.Days)
	assert.Equal(t, "monthly", resp.Period)
	assert.Len(t, resp.Records, 12)
	assert.Len(t, resp.Summary.FeeTotals, 3, "default fees apply when none are sent")
	assert.True(t, strings.HasPrefix(resp.Summary.FinalClosingValue, "1160000.0"))
}

func TestProjectHandler_CustomFeesAndTiming(t *testing.T) {
	handler := newTestHandler()
	w := post(t, handler.Project, "/projection", `{
		"principal": "5000",
		"annual_growth_rate": "0.1",
		"start_date": "2025-03-01",
		"end_date": "2025-03-03",
		"fee_timing": "next_day",
		"fees": [{"name": "management", "annual_rate": 0.02}]
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ProjectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 3)
	assert.True(t, resp.Records[0].CumulativeFee.IsZero())
	require.Len(t, resp.Summary.FeeTotals, 1)
	assert.Equal(t, "management", resp.Summary.FeeTotals[0].Name)
}

func TestProjectHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		status int
		want   string
	}{
		{"method not allowed", http.MethodGet, "", http.StatusMethodNotAllowed, "method not allowed"},
		{"invalid json", http.MethodPost, `{invalid-json}`, http.StatusBadRequest, "invalid request body"},
		{"missing dates", http.MethodPost, `{"principal": 10}`, http.StatusBadRequest, "required"},
		{"bad period", http.MethodPost, `{"start_date": "2025-01-01", "end_date": "2025-01-02", "period": "hourly"}`, http.StatusBadRequest, "unknown period"},
		{"reversed range", http.MethodPost, `{"principal": 10, "start_date": "2025-02-01", "end_date": "2025-01-01"}`, http.StatusUnprocessableEntity, "invalid date range"},
		{"negative growth", http.MethodPost, `{"principal": 10, "annual_growth_rate": -0.1, "start_date": "2025-01-01", "end_date": "2025-01-02"}`, http.StatusUnprocessableEntity, "annual_growth_rate"},
		{"negative fee", http.MethodPost, `{"start_date": "2025-01-01", "end_date": "2025-01-02", "fees": [{"name": "other", "annual_rate": -1}]}`, http.StatusUnprocessableEntity, "other must not be negative"},
		{"negative principal", http.MethodPost, `{"principal": -10, "start_date": "2025-01-01", "end_date": "2025-01-02"}`, http.StatusUnprocessableEntity, "principal"},
	}

	handler := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/projection", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Project(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			if tt.status == http.StatusUnprocessableEntity {
				var body errorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.NotEmpty(t, body.Error)
			}
		})
	}
}

const compareBody = `{
	"currency": "USD",
	"scenarios": [
		{"name": "slow", "principal": 1000, "annual_growth_rate": 0.05, "start_date": "2025-01-01", "end_date": "2025-03-31"},
		{"name": "fast", "principal": 1000, "annual_growth_rate": 0.15, "start_date": "2025-01-01", "end_date": "2025-03-31"}
	]
}`

func TestProjectHandler_Limits(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		code  int
	}{
		{"two centuries", "1900-01-01", "2099-12-31", http.StatusUnprocessableEntity},
		{"whole calendar", "0001-01-01", "9999-12-31", http.StatusUnprocessableEntity},
		{"exactly one hundred years", "2000-01-01", "2099-12-31", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, newTestHandler().Project, "/projection",
				`{"principal": 1000, "annual_growth_rate": 0.16, "period": "yearly",
				  "start_date": "`+tt.start+`", "end_date": "`+tt.end+`"}`)
			require.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.code == http.StatusUnprocessableEntity {
				assert.Contains(t, w.Body.String(), "exceeds the limit of 36525 days")
			}
		})
	}

	t.Run("configured limit", func(t *testing.T) {
		h := newTestHandler()
		h.SetLimits(0, 31)
		w := post(t, h.Project, "/projection",
			`{"principal": 1000, "start_date": "2025-01-01", "end_date": "2025-02-01"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "32 days exceeds the limit of 31 days")
	})

	t.Run("body too large", func(t *testing.T) {
		h := newTestHandler()
		h.SetLimits(64, 0)
		body := `{"principal": 1000, "start_date": "2025-01-01", "end_date": "2025-01-02", "fees": [` +
			strings.Repeat(`{"name": "x", "annual_rate": 0},`, 10) + `{"name": "y", "annual_rate": 0}]}`
		w := post(t, h.Project, "/projection", body)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

		w = post(t, h.Compare, "/compare", body)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestCompareHandler_RejectsLongScenario(t *testing.T) {
	w := post(t, newTestHandler().Compare, "/compare", `{"scenarios": [
		{"name": "ok", "principal": 1000, "annual_growth_rate": 0.1, "start_date": "2025-01-01", "end_date": "2025-12-31"},
		{"name": "forever", "principal": 1000, "annual_growth_rate": 0.1, "start_date": "0001-01-01", "end_date": "9999-12-31"}
	]}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "scenario forever: date range of 3652059 days")
}

func TestCompareHandler(t *testing.T) {
	handler := newTestHandler()

	w := post(t, handler.Compare, "/compare", compareBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "json")
	assert.Contains(t, w.Body.String(), `"best": "fast"`)

	w = post(t, handler.Compare, "/compare?format=csv-summary", compareBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "Scenario,StartDate"))

	w = post(t, handler.Compare, "/compare?format=pdf", compareBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported report format")

	w = post(t, handler.Compare, "/compare", `{"scenarios": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "no scenarios provided")
}

func TestRoutes(t *testing.T) {
	srv := httptest.NewServer(Routes(newTestHandler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Post(srv.URL+"/projection", "application/json",
		strings.NewReader(`{"principal": 1, "start_date": "2025-01-01", "end_date": "2025-01-01"}`))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	resp3, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}
