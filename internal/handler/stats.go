package handler

import (
	"net/http"
	"strconv"

	"github.com/charlesmagnus93/epargnePro/internal/ledger"
	"github.com/charlesmagnus93/epargnePro/internal/middleware"
	"github.com/charlesmagnus93/epargnePro/internal/store"
	"github.com/charlesmagnus93/epargnePro/internal/util"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the aggregation engine as read models. Every endpoint
// accepts ?date=YYYY-MM-DD as the reference date, defaulting to today, and
// recomputes from the raw transaction list on each call.
type StatsHandler struct {
	Store *store.Store
}

func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{Store: st}
}

// Summary is the dashboard read model: today's and the month's totals, the
// daily budget gauge, the fund balance and the five most recent transactions.
func (h *StatsHandler) Summary(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	ref, ok := refDate(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	txns, err := loadTransactions(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}
	limits, err := loadBudget(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch budget")
		return
	}
	fund, err := loadFund(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch emergency fund")
		return
	}

	today := ledger.TodayTotals(txns, ref)
	status, pct := ledger.BudgetStatus(today.Expense, limits.Daily)

	recent := txns
	if len(recent) > 5 {
		recent = recent[:5]
	}

	util.Success(c, util.Response{
		"date":     ref,
		"today":    today,
		"week":     ledger.WeekTotals(txns, ref),
		"month":    ledger.MonthTotals(txns, ref),
		"all_time": ledger.AllTimeTotals(txns),
		"daily_budget": gin.H{
			"spent":      today.Expense,
			"limit":      limits.Daily,
			"remaining":  limits.Daily - today.Expense,
			"percentage": pct,
			"status":     status,
		},
		"emergency_balance":   fund.Balance,
		"transaction_count":   len(txns),
		"recent_transactions": recent,
	})
}

// Daily returns the zero-filled per-day series ending at the reference date.
func (h *StatsHandler) Daily(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	ref, ok := refDate(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	days := 30
	if s := c.Query("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 365 {
			util.Error(c, http.StatusBadRequest, "days must be between 1 and 365")
			return
		}
		days = n
	}

	txns, err := loadTransactions(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	util.Success(c, util.Response{
		"date":   ref,
		"days":   days,
		"series": ledger.DailySeries(txns, ref, days),
	})
}

// Categories returns the per-category breakdown, either over the full
// history (default) or the reference month (?window=month), with each
// category's share of the window's expenses.
func (h *StatsHandler) Categories(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	ref, ok := refDate(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	txns, err := loadTransactions(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	var pred func(ledger.Transaction) bool
	window := c.DefaultQuery("window", "all")
	switch window {
	case "all":
	case "month":
		pred = ledger.InMonth(ref)
	default:
		util.Error(c, http.StatusBadRequest, "window must be all or month")
		return
	}

	cats := ledger.GroupByCategory(txns, pred)
	var totalExpense float64
	for _, cat := range cats {
		totalExpense += cat.Expense
	}

	type categoryShare struct {
		ledger.CategoryTotals
		ExpenseShare float64 `json:"expense_share"`
	}
	shares := make([]categoryShare, 0, len(cats))
	for _, cat := range cats {
		share := 0.0
		if totalExpense > 0 {
			share = cat.Expense / totalExpense * 100
		}
		shares = append(shares, categoryShare{CategoryTotals: cat, ExpenseShare: share})
	}

	util.Success(c, util.Response{
		"date":          ref,
		"window":        window,
		"categories":    shares,
		"total_expense": totalExpense,
	})
}

// Budget returns the daily/weekly/monthly status report.
func (h *StatsHandler) Budget(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	ref, ok := refDate(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	txns, err := loadTransactions(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}
	limits, err := loadBudget(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch budget")
		return
	}

	util.Success(c, util.Response{
		"date":    ref,
		"periods": ledger.BudgetReport(txns, ref, limits),
	})
}

// Recommendations runs the rule set in the user's language.
func (h *StatsHandler) Recommendations(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	ref, ok := refDate(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	txns, err := loadTransactions(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}
	limits, err := loadBudget(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch budget")
		return
	}
	fund, err := loadFund(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch emergency fund")
		return
	}
	settings, err := loadSettings(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch settings")
		return
	}

	recs := ledger.Recommendations(txns, ref, limits, fund, settings.Language, settings.Currency)

	util.Success(c, util.Response{
		"date":            ref,
		"recommendations": recs,
	})
}
