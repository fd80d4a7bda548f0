// Package api exposes the dashboard over HTTP as a small JSON API plus
// rendered PNG charts. It is a thin presentation adapter: all state lives
// in the session, all numbers come from the analytics package.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gmartin/finboard/internal/analytics"
	"gmartin/finboard/internal/charts"
	"gmartin/finboard/internal/loaderror"
	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/models"
	"gmartin/finboard/internal/session"

	"github.com/shopspring/decimal"
)

// DefaultProjectionMonths is the horizon used when a projection request
// does not specify one.
const DefaultProjectionMonths = 12

// Server routes dashboard requests onto a session.
type Server struct {
	session *session.Session
	logger  logging.Logger
}

// NewServer wires the handlers around an existing session.
func NewServer(sess *session.Session, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Server{session: sess, logger: logger}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/upload", s.handleUpload)
	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions/{index}/category", s.handleEditCategory)
	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleAddCategory)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/trends", s.handleTrends)
	mux.HandleFunc("GET /api/projection", s.handleProjection)
	mux.HandleFunc("GET /api/budgets", s.handleListBudgets)
	mux.HandleFunc("POST /api/budgets", s.handleSetBudget)
	mux.HandleFunc("GET /api/charts/expenses.png", s.handleExpenseChart)
	mux.HandleFunc("GET /api/charts/trend.png", s.handleTrendChart)
	mux.HandleFunc("GET /api/charts/projection.png", s.handleProjectionChart)
	return mux
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := s.session.LoadCSV(r.Body); err != nil {
		s.writeError(w, err)
		return
	}
	table := s.session.Table()
	s.logger.WithField(logging.FieldCount, table.Len()).Info("CSV upload accepted")
	s.writeJSON(w, http.StatusCreated, map[string]any{
		"transactions": table.Len(),
	})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	table := s.session.Table()
	switch r.URL.Query().Get("direction") {
	case "":
	case string(models.DirectionDebit):
		table = models.NewTransactionTable(table.Debits())
	case string(models.DirectionCredit):
		table = models.NewTransactionTable(table.Credits())
	default:
		s.writeError(w, &badRequestError{msg: "direction must be Debit or Credit"})
		return
	}
	s.writeJSON(w, http.StatusOK, table.Transactions)
}

type editCategoryRequest struct {
	Category string `json:"category"`
}

func (s *Server) handleEditCategory(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.writeError(w, &badRequestError{msg: "index must be an integer"})
		return
	}
	var req editCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &badRequestError{msg: "invalid JSON body"})
		return
	}
	if req.Category == "" {
		s.writeError(w, &badRequestError{msg: "category must not be empty"})
		return
	}

	updated, err := s.session.ApplyEdit(index, req.Category)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.CategoryNames())
}

type addCategoryRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req addCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &badRequestError{msg: "invalid JSON body"})
		return
	}
	if req.Name == "" {
		s.writeError(w, &badRequestError{msg: "name must not be empty"})
		return
	}
	if err := s.session.AddCategory(req.Name); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, s.session.CategoryNames())
}

type summaryResponse struct {
	Totals   analytics.Totals          `json:"totals"`
	Expenses []analytics.CategoryTotal `json:"expenses"`
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	table := s.session.Table()
	s.writeJSON(w, http.StatusOK, summaryResponse{
		Totals:   analytics.ComputeTotals(table),
		Expenses: analytics.ExpenseSummary(table),
	})
}

type trendsResponse struct {
	MonthlyNet []analytics.MonthlyPoint   `json:"monthly_net"`
	Categories []analytics.CategorySeries `json:"categories"`
}

func (s *Server) handleTrends(w http.ResponseWriter, _ *http.Request) {
	table := s.session.Table()
	s.writeJSON(w, http.StatusOK, trendsResponse{
		MonthlyNet: analytics.MonthlyNet(table),
		Categories: analytics.CategoryTrends(table),
	})
}

type projectionResponse struct {
	AverageMonthlyNet decimal.Decimal   `json:"average_monthly_net"`
	Values            []decimal.Decimal `json:"values"`
	MonthsToGoal      *decimal.Decimal  `json:"months_to_goal,omitempty"`
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	months := DefaultProjectionMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.writeError(w, &badRequestError{msg: "months must be a positive integer"})
			return
		}
		months = parsed
	}

	table := s.session.Table()
	values := analytics.SavingsProjection(table, months)
	resp := projectionResponse{
		AverageMonthlyNet: analytics.AverageMonthlyNet(table),
		Values:            values,
	}

	if raw := r.URL.Query().Get("goal"); raw != "" {
		goal, err := decimal.NewFromString(raw)
		if err != nil {
			s.writeError(w, &badRequestError{msg: "goal must be a number"})
			return
		}
		if estimate, ok := analytics.MonthsToGoal(goal, values[0], resp.AverageMonthlyNet); ok {
			resp.MonthsToGoal = &estimate
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListBudgets(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.BudgetProgress())
}

type setBudgetRequest struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req setBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &badRequestError{msg: "invalid JSON body"})
		return
	}
	limit, err := decimal.NewFromString(req.Limit)
	if err != nil {
		s.writeError(w, &badRequestError{msg: "limit must be a number"})
		return
	}
	if err := s.session.SetBudget(req.Category, limit); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.session.BudgetProgress())
}

func (s *Server) handleExpenseChart(w http.ResponseWriter, _ *http.Request) {
	png, err := charts.ExpenseBarChart(analytics.ExpenseSummary(s.session.Table()))
	s.writePNG(w, png, err)
}

func (s *Server) handleTrendChart(w http.ResponseWriter, _ *http.Request) {
	png, err := charts.MonthlyTrendChart(analytics.MonthlyNet(s.session.Table()))
	s.writePNG(w, png, err)
}

func (s *Server) handleProjectionChart(w http.ResponseWriter, r *http.Request) {
	months := DefaultProjectionMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.writeError(w, &badRequestError{msg: "months must be a positive integer"})
			return
		}
		months = parsed
	}
	values := analytics.SavingsProjection(s.session.Table(), months)
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = v.InexactFloat64()
	}
	png, err := charts.ProjectionChart(floats)
	s.writePNG(w, png, err)
}

func (s *Server) writePNG(w http.ResponseWriter, png []byte, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}
	if png == nil {
		s.writeError(w, &badRequestError{msg: "not enough data to draw a chart"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

// writeError maps domain errors onto HTTP statuses: anything the client can
// fix (bad CSV, unknown category, malformed input) is a 400, the rest a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var loadErr *loaderror.LoadError
	var storeErr *loaderror.StoreError
	var badReq *badRequestError
	switch {
	case errors.As(err, &loadErr), errors.As(err, &storeErr), errors.As(err, &badReq),
		errors.Is(err, session.ErrIndexOutOfRange):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.WithError(err).Error("Request failed")
	} else {
		s.logger.WithError(err).Debug("Request rejected")
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
