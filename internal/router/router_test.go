package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charlesmagnus93/epargnePro/internal/config"
	"github.com/charlesmagnus93/epargnePro/internal/database"
	"github.com/charlesmagnus93/epargnePro/internal/ledger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: gin.TestMode},
		JWT:      config.JWTConfig{Secret: "test-secret", Issuer: "epargnepro", ExpireHours: 1},
		Security: config.SecurityConfig{BcryptCost: 4},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return Setup(cfg, db, log)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signupAndLogin creates an account and returns a bearer token.
func signupAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/signup", "", gin.H{
		"email":    "ada@example.com",
		"password": "Sup3rSecret",
		"name":     "Ada",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "Sup3rSecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func today() string { return ledger.DateOf(time.Now()) }

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupTestRouter(t)

	for _, path := range []string{"/api/transactions", "/api/budget", "/api/emergency", "/api/settings"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Contains(t, decode(t, w), "error")
	}

	w := doJSON(t, r, http.MethodGet, "/api/transactions", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignup_CreatesDefaultDocuments(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/budget", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	budget := decode(t, w)["budget"].(map[string]any)
	assert.Equal(t, 5000.0, budget["daily"])
	assert.Equal(t, 30000.0, budget["weekly"])
	assert.Equal(t, 100000.0, budget["monthly"])

	w = doJSON(t, r, http.MethodGet, "/api/settings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	settings := decode(t, w)["settings"].(map[string]any)
	assert.Equal(t, "FCFA", settings["currency"])
	assert.Equal(t, "fr", settings["language"])

	w = doJSON(t, r, http.MethodGet, "/api/emergency", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	emergency := decode(t, w)["emergency"].(map[string]any)
	assert.Equal(t, 0.0, emergency["balance"])
	assert.Equal(t, 50000.0, emergency["goal"])

	w = doJSON(t, r, http.MethodGet, "/api/transactions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["transactions"])
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	r := setupTestRouter(t)
	signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/signup", "", gin.H{
		"email":    "ada@example.com",
		"password": "AnotherPass1",
		"name":     "Ada Again",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_LockoutAfterFiveFailures(t *testing.T) {
	r := setupTestRouter(t)
	signupAndLogin(t, r)

	for i := 0; i < 5; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
			"email":    "ada@example.com",
			"password": "WrongPass" + fmt.Sprint(i),
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "attempt %d", i+1)
	}

	// account is now locked: the right password is rejected too
	w := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "Sup3rSecret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "locked")
}

func TestTransactions_CreateListDelete(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/transactions", token, gin.H{
		"type":        "expense",
		"amount":      1200,
		"category":    "Food",
		"description": "lunch",
		"date":        today(),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode(t, w)["transaction"].(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)

	w = doJSON(t, r, http.MethodPost, "/api/transactions", token, gin.H{
		"type":     "income",
		"amount":   5000,
		"category": "Salary",
		"date":     today(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	// newest first
	w = doJSON(t, r, http.MethodGet, "/api/transactions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	txns := decode(t, w)["transactions"].([]any)
	require.Len(t, txns, 2)
	assert.Equal(t, "Salary", txns[0].(map[string]any)["category"])

	// delete restores the prior state
	w = doJSON(t, r, http.MethodDelete, "/api/transactions/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/transactions", token, nil)
	txns = decode(t, w)["transactions"].([]any)
	require.Len(t, txns, 1)
	assert.Equal(t, "Salary", txns[0].(map[string]any)["category"])

	// deleting an unknown id is a silent no-op
	w = doJSON(t, r, http.MethodDelete, "/api/transactions/nope", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTransactions_DailyBudgetAlert(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	// daily limit is 5000: 3000 stays quiet, +2500 overshoots by 500
	w := doJSON(t, r, http.MethodPost, "/api/transactions", token, gin.H{
		"type":     "expense",
		"amount":   3000,
		"category": "Food",
		"date":     today(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, decode(t, w), "alert")

	w = doJSON(t, r, http.MethodPost, "/api/transactions", token, gin.H{
		"type":     "expense",
		"amount":   2500,
		"category": "Transport",
		"date":     today(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Contains(t, body, "alert")
	alert := body["alert"].(map[string]any)
	assert.Equal(t, 500.0, alert["over"])
	assert.Equal(t, "warning", alert["severity"])
}

func TestTransactions_Validation(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	cases := []gin.H{
		{"type": "expense", "amount": -5, "category": "Food"},
		{"type": "expense", "amount": 100, "category": ""},
		{"type": "other", "amount": 100, "category": "Food"},
		{"type": "expense", "amount": 100, "category": "Food", "date": "15/03/2025"},
	}
	for i, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/transactions", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "case %d: %s", i, w.Body.String())
	}
}

func TestEmergency_WithdrawalGuard(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/emergency/transactions", token, gin.H{
		"type":   "deposit",
		"amount": 1000,
		"reason": "initial savings",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	emergency := body["emergency"].(map[string]any)
	assert.Equal(t, 1000.0, emergency["balance"])

	// fund entries carry a full timestamp, not just a calendar date
	entry := body["entry"].(map[string]any)
	_, err := time.Parse(time.RFC3339, entry["date"].(string))
	assert.NoError(t, err, "entry date %q must be RFC3339", entry["date"])

	// withdrawal over the balance is rejected server-side
	w = doJSON(t, r, http.MethodPost, "/api/emergency/transactions", token, gin.H{
		"type":   "withdrawal",
		"amount": 1500,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/emergency", token, nil)
	emergency = decode(t, w)["emergency"].(map[string]any)
	assert.Equal(t, 1000.0, emergency["balance"], "balance must be untouched")
	assert.Len(t, emergency["transactions"].([]any), 1)
}

func TestBudget_PutRejectsNonPositiveLimits(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/budget", token, gin.H{
		"daily": 0, "weekly": 30000, "monthly": 100000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/budget", token, gin.H{
		"daily": 2000, "weekly": 10000, "monthly": 40000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/budget", token, nil)
	budget := decode(t, w)["budget"].(map[string]any)
	assert.Equal(t, 2000.0, budget["daily"])
}

func TestSettings_PutValidation(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/settings", token, gin.H{
		"currency": "EUR", "language": "de",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/settings", token, gin.H{
		"currency": "EUR", "language": "en",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestStats_SummaryAndDailySeries(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	for _, body := range []gin.H{
		{"type": "income", "amount": 50000, "category": "Salary", "date": today()},
		{"type": "expense", "amount": 2500, "category": "Food", "date": today()},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/transactions", token, body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/stats/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	month := body["month"].(map[string]any)
	assert.Equal(t, 50000.0, month["income"])
	assert.Equal(t, 2500.0, month["expense"])
	assert.Equal(t, 47500.0, month["balance"])

	gauge := body["daily_budget"].(map[string]any)
	assert.Equal(t, 2500.0, gauge["spent"])
	assert.Equal(t, "ok", gauge["status"])

	w = doJSON(t, r, http.MethodGet, "/api/stats/daily", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	series := decode(t, w)["series"].([]any)
	require.Len(t, series, 30)
	last := series[29].(map[string]any)
	assert.Equal(t, today(), last["date"])
	assert.Equal(t, 47500.0, last["balance"])
}

func TestStats_CategoryShares(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	for _, body := range []gin.H{
		{"type": "expense", "amount": 2500, "category": "Food", "date": today()},
		{"type": "expense", "amount": 1500, "category": "Food", "date": today()},
		{"type": "expense", "amount": 5000, "category": "Transport", "date": today()},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/transactions", token, body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/stats/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, 9000.0, body["total_expense"])

	cats := body["categories"].([]any)
	require.Len(t, cats, 2)
	// newest first in storage, so Transport was seen first
	first := cats[0].(map[string]any)
	assert.Equal(t, "Transport", first["category"])

	var food map[string]any
	for _, cat := range cats {
		m := cat.(map[string]any)
		if m["category"] == "Food" {
			food = m
		}
	}
	require.NotNil(t, food)
	assert.InDelta(t, 44.44, food["expense_share"].(float64), 0.01)
}

func TestStats_Recommendations(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	// expenses over income this month plus a dominating category
	for _, body := range []gin.H{
		{"type": "income", "amount": 1000, "category": "Salary", "date": today()},
		{"type": "expense", "amount": 1400, "category": "Food", "date": today()},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/transactions", token, body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/stats/recommendations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	recs := decode(t, w)["recommendations"].([]any)
	require.NotEmpty(t, recs)

	first := recs[0].(map[string]any)
	assert.Equal(t, "warning", first["severity"])
}

func TestExportCSV(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/transactions", token, gin.H{
		"type": "expense", "amount": 100, "category": "Food", "date": today(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/export/csv", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "Food")
}

func TestAuditTrail_RecordsMutations(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/transactions", token, gin.H{
		"type": "expense", "amount": 100, "category": "Food", "date": today(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/logs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.GreaterOrEqual(t, body["total"].(float64), 1.0)
}

func TestProfile_ChangePasswordFlow(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/profile/password", token, gin.H{
		"old_password": "wrong",
		"new_password": "NewPassword1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/profile/password", token, gin.H{
		"old_password": "Sup3rSecret",
		"new_password": "NewPassword1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "NewPassword1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStats_ReferenceDateOverride(t *testing.T) {
	r := setupTestRouter(t)
	token := signupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/transactions", token, gin.H{
		"type": "expense", "amount": 700, "category": "Food", "date": "2025-03-15",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/stats/summary?date=2025-03-15", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	todayTotals := decode(t, w)["today"].(map[string]any)
	assert.Equal(t, 700.0, todayTotals["expense"])

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/stats/summary?date=%s", "not-a-date"), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
