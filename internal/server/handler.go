package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/apeftrust/investment-calculator/internal/calculation"
	"github.com/apeftrust/investment-calculator/internal/config"
	"github.com/apeftrust/investment-calculator/internal/domain"
	"github.com/apeftrust/investment-calculator/internal/output"
	"github.com/apeftrust/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ProjectionPayload is the body of POST /projection.
// Fees defaults to the Apef Trust schedule when omitted.
type ProjectionPayload struct {
	Principal        decimal.Decimal  `json:"principal"`
	AnnualGrowthRate decimal.Decimal  `json:"annual_growth_rate"`
	StartDate        dateutil.Date    `json:"start_date"`
	EndDate          dateutil.Date    `json:"end_date"`
	FeeTiming        domain.FeeTiming `json:"fee_timing"`
	Fees             []domain.FeeRate `json:"fees"`
	Period           string           `json:"period"`
}

// ProjectionResponse is the body returned by POST /projection.
type ProjectionResponse struct {
	Summary domain.ProjectionSummary `json:"summary"`
	Period  string                   `json:"period"`
	Records []domain.DailyRecord     `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
}

const (
	// DefaultMaxBodyBytes caps the size of a request body.
	DefaultMaxBodyBytes int64 = 1 << 20

	// DefaultMaxDays caps the length of one projection: 100 years.
	DefaultMaxDays = 36525
)

type ProjectionHandler struct {
	engine       *calculation.ProjectionEngine
	parser       *config.InputParser
	logger       calculation.Logger
	maxBodyBytes int64
	maxDays      int
}

func NewProjectionHandler(engine *calculation.ProjectionEngine, logger calculation.Logger) *ProjectionHandler {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &ProjectionHandler{
		engine:       engine,
		parser:       config.NewInputParser(),
		logger:       logger,
		maxBodyBytes: DefaultMaxBodyBytes,
		maxDays:      DefaultMaxDays,
	}
}

// SetLimits overrides the body size and projection length limits. Non-positive values keep the defaults.
func (h *ProjectionHandler) SetLimits(maxBodyBytes int64, maxDays int) {
	if maxBodyBytes > 0 {
		h.maxBodyBytes = maxBodyBytes
	}
	if maxDays > 0 {
		h.maxDays = maxDays
	}
}

// checkRange rejects projections longer than the handler's limit.
func (h *ProjectionHandler) checkRange(prefix string, start, end dateutil.Date) error {
	if days := dateutil.DaysInclusive(start, end); days > h.maxDays {
		return fmt.Errorf("%sdate range of %d days exceeds the limit of %d days", prefix, days, h.maxDays)
	}
	return nil
}

// decodeBody reads a size-limited JSON body, answering 413 or 400 itself on failure.
func (h *ProjectionHandler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// Project runs a single projection.
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input ProjectionPayload
	if !h.decodeBody(w, r, &input) {
		return
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		http.Error(w, "start_date and end_date are required", http.StatusBadRequest)
		return
	}
	period, err := dateutil.ParsePeriod(input.Period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if input.Principal.IsNegative() {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "principal cannot be negative"})
		return
	}
	if err := h.checkRange("", input.StartDate, input.EndDate); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	fees := input.Fees
	if fees == nil {
		fees = domain.DefaultFees()
	}
	req := domain.ProjectionRequest{
		Principal:        input.Principal,
		AnnualGrowthRate: input.AnnualGrowthRate,
		Fees:             fees,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		FeeTiming:        input.FeeTiming,
	}

	result, err := h.engine.Run(req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectionResponse{
		Summary: result.Summary,
		Period:  period.String(),
		Records: calculation.Rollup(result.Records, period),
	})
}

// Compare runs every scenario of a JSON configuration and renders it in the
// format named by the "format" query parameter (json by default).
func (h *ProjectionHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cfg domain.Configuration
	if !h.decodeBody(w, r, &cfg) {
		return
	}
	if err := h.parser.ValidateConfiguration(&cfg); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	for _, s := range cfg.Scenarios {
		if err := h.checkRange("scenario "+s.Name+": ", s.StartDate, s.EndDate); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	f, err := output.Lookup(format, r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	comparison, err := h.engine.RunScenarios(r.Context(), &cfg)
	if err != nil {
		h.writeError(w, err)
		return
	}
	body, err := f.Format(comparison)
	if err != nil {
		h.logger.Errorf("formatting %s report: %v", f.Name(), err)
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	contentType := mime.TypeByExtension("." + output.Extension(f))
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Healthz reports liveness.
func (h *ProjectionHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *ProjectionHandler) writeError(w http.ResponseWriter, err error) {
	if domain.IsValidationError(err) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	if errors.Is(err, context.Canceled) {
		http.Error(w, "request canceled", http.StatusServiceUnavailable)
		return
	}
	h.logger.Errorf("projection failed: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
