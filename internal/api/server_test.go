package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"gmartin/finboard/internal/analytics"
	"gmartin/finboard/internal/budget"
	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/models"
	"gmartin/finboard/internal/session"
	"gmartin/finboard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Date,Details,Amount\n" +
	"15/01/2024,ARCADIA EXPR SALARY,2000.00\n" +
	"16/01/2024,TESCO STORES 1234 CLP,-23.50\n" +
	"15/02/2024,ARCADIA EXPR SALARY,2000.00\n" +
	"16/02/2024,SCREWFIX DIRECT DDR,-45.00\n"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	categoryStore := store.NewCategoryStore(filepath.Join(dir, "categories.json"), &logging.MockLogger{})
	require.NoError(t, categoryStore.Load())
	limits := budget.NewLimits(filepath.Join(dir, "budgets.yaml"), &logging.MockLogger{})
	require.NoError(t, limits.Load())

	sess := session.New(categoryStore, limits, &logging.MockLogger{})
	srv := httptest.NewServer(NewServer(sess, &logging.MockLogger{}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func upload(t *testing.T, srv *httptest.Server, csvBody string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/upload", "text/csv", strings.NewReader(csvBody))
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestUploadAndListTransactions(t *testing.T) {
	srv := newTestServer(t)

	resp := upload(t, srv, sampleCSV)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/transactions")
	require.NoError(t, err)
	var txs []models.Transaction
	decodeJSON(t, resp, &txs)

	require.Len(t, txs, 4)
	assert.Equal(t, "Salary", txs[0].Category)
	assert.Equal(t, "Groceries", txs[1].Category)
	assert.Equal(t, models.CategoryUncategorized, txs[3].Category)
}

func TestListTransactionsDirectionFilter(t *testing.T) {
	srv := newTestServer(t)
	upload(t, srv, sampleCSV).Body.Close()

	resp, err := http.Get(srv.URL + "/api/transactions?direction=Debit")
	require.NoError(t, err)
	var txs []models.Transaction
	decodeJSON(t, resp, &txs)
	require.Len(t, txs, 2)
	for _, tx := range txs {
		assert.True(t, tx.IsDebit())
	}

	resp, err = http.Get(srv.URL + "/api/transactions?direction=Credit")
	require.NoError(t, err)
	var credits []models.Transaction
	decodeJSON(t, resp, &credits)
	require.Len(t, credits, 2)
	for _, tx := range credits {
		assert.True(t, tx.IsCredit())
	}

	resp, err = http.Get(srv.URL + "/api/transactions?direction=sideways")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsMalformedCSV(t *testing.T) {
	srv := newTestServer(t)

	resp := upload(t, srv, "Date,Details,Amount\nnot-a-date,X,1.00\n")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEditCategoryFeedback(t *testing.T) {
	srv := newTestServer(t)
	upload(t, srv, sampleCSV).Body.Close()

	resp, err := http.Post(srv.URL+"/api/transactions/3/category", "application/json",
		strings.NewReader(`{"category":"Shopping"}`))
	require.NoError(t, err)
	var updated models.Transaction
	decodeJSON(t, resp, &updated)
	assert.Equal(t, "Shopping", updated.Category)

	// Re-upload: the edit taught the store a new keyword.
	upload(t, srv, sampleCSV).Body.Close()
	resp, err = http.Get(srv.URL + "/api/transactions")
	require.NoError(t, err)
	var txs []models.Transaction
	decodeJSON(t, resp, &txs)
	assert.Equal(t, "Shopping", txs[3].Category)
}

func TestEditCategoryErrors(t *testing.T) {
	srv := newTestServer(t)
	upload(t, srv, sampleCSV).Body.Close()

	cases := []struct {
		name string
		path string
		body string
	}{
		{"unknown category", "/api/transactions/0/category", `{"category":"Ghost"}`},
		{"index out of range", "/api/transactions/99/category", `{"category":"Shopping"}`},
		{"non-integer index", "/api/transactions/abc/category", `{"category":"Shopping"}`},
		{"empty category", "/api/transactions/0/category", `{"category":""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+tc.path, "application/json", strings.NewReader(tc.body))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAddAndListCategories(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/categories", "application/json",
		strings.NewReader(`{"name":"Pets"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/categories")
	require.NoError(t, err)
	var names []string
	decodeJSON(t, resp, &names)
	assert.Contains(t, names, "Pets")
	assert.Contains(t, names, models.CategoryUncategorized)
}

func TestSummary(t *testing.T) {
	srv := newTestServer(t)
	upload(t, srv, sampleCSV).Body.Close()

	resp, err := http.Get(srv.URL + "/api/summary")
	require.NoError(t, err)
	var summary struct {
		Totals   analytics.Totals          `json:"totals"`
		Expenses []analytics.CategoryTotal `json:"expenses"`
	}
	decodeJSON(t, resp, &summary)

	assert.Equal(t, "4000", summary.Totals.Income.String())
	assert.Equal(t, "68.5", summary.Totals.Expenses.String())
	assert.Equal(t, "3931.5", summary.Totals.Net.String())
	require.Len(t, summary.Expenses, 2)
}

func TestTrends(t *testing.T) {
	srv := newTestServer(t)
	upload(t, srv, sampleCSV).Body.Close()

	resp, err := http.Get(srv.URL + "/api/trends")
	require.NoError(t, err)
	var trends struct {
		MonthlyNet []analytics.MonthlyPoint   `json:"monthly_net"`
		Categories []analytics.CategorySeries `json:"categories"`
	}
	decodeJSON(t, resp, &trends)

	require.Len(t, trends.MonthlyNet, 2)
	assert.Equal(t, "2024-01", trends.MonthlyNet[0].Month)
	assert.Equal(t, "1976.5", trends.MonthlyNet[0].Amount.String())
}

func TestProjection(t *testing.T) {
	srv := newTestServer(t)
	upload(t, srv, sampleCSV).Body.Close()

	resp, err := http.Get(srv.URL + "/api/projection?months=3&goal=10000")
	require.NoError(t, err)
	var proj struct {
		AverageMonthlyNet string   `json:"average_monthly_net"`
		Values            []string `json:"values"`
		MonthsToGoal      *string  `json:"months_to_goal"`
	}
	decodeJSON(t, resp, &proj)

	// months+1 values, starting from the current position.
	require.Len(t, proj.Values, 4)
	assert.Equal(t, "3931.5", proj.Values[0])
	require.NotNil(t, proj.MonthsToGoal)
}

func TestProjectionRejectsBadMonths(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/projection?months=0")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBudgets(t *testing.T) {
	srv := newTestServer(t)
	upload(t, srv, sampleCSV).Body.Close()

	resp, err := http.Post(srv.URL+"/api/budgets", "application/json",
		strings.NewReader(`{"category":"Groceries","limit":"100"}`))
	require.NoError(t, err)
	var progress []budget.Progress
	decodeJSON(t, resp, &progress)

	found := false
	for _, p := range progress {
		if p.Category == "Groceries" {
			found = true
			assert.Equal(t, "23.5", p.Spent.String())
			assert.Equal(t, "0.235", p.Ratio.String())
		}
	}
	assert.True(t, found)

	resp, err = http.Post(srv.URL+"/api/budgets", "application/json",
		strings.NewReader(`{"category":"Ghost","limit":"50"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExpenseChartPNG(t *testing.T) {
	srv := newTestServer(t)
	upload(t, srv, sampleCSV).Body.Close()

	resp, err := http.Get(srv.URL + "/api/charts/expenses.png")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestChartWithoutDataIsRejected(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/charts/trend.png")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
