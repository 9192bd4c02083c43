package handler

import (
	"net/http"
	"time"

	"github.com/charlesmagnus93/epargnePro/internal/i18n"
	"github.com/charlesmagnus93/epargnePro/internal/ledger"
	"github.com/charlesmagnus93/epargnePro/internal/middleware"
	"github.com/charlesmagnus93/epargnePro/internal/models"
	"github.com/charlesmagnus93/epargnePro/internal/store"
	"github.com/charlesmagnus93/epargnePro/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler is the command layer over the transaction list: create
// prepends (newest first), delete removes by id, the list itself is the only
// ordering.
type TransactionHandler struct {
	Store *store.Store
}

func NewTransactionHandler(st *store.Store) *TransactionHandler {
	return &TransactionHandler{Store: st}
}

// List returns the full transaction list, newest first.
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	txns, err := loadTransactions(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	util.Success(c, util.Response{"transactions": txns})
}

type createTransactionReq struct {
	Kind        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"max=255"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
}

// Create validates the input, assigns an id, prepends the transaction and
// persists the whole list. When the day's expenses (including this one) pass
// the daily limit, the response carries an alert stating the overshoot.
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "type, amount and category are required")
		return
	}

	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid amount")
		return
	}
	if err := util.ValidateCategory(req.Category); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid category")
		return
	}

	now := time.Now()
	if req.Date == "" {
		req.Date = ledger.DateOf(now)
	} else if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if req.Time == "" {
		req.Time = now.Format("15:04")
	}

	txns, err := loadTransactions(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	tx := ledger.Transaction{
		ID:          uuid.NewString(),
		Kind:        req.Kind,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
	}
	txns = ledger.Prepend(txns, tx)

	if err := h.Store.Set(user.ID, models.DocTransactions, txns); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	resp := util.Response{"transaction": tx}

	// daily budget check, including the transaction just added
	if tx.Kind == ledger.KindExpense {
		limits, err := loadBudget(h.Store, user.ID)
		if err == nil && limits.Daily > 0 {
			spentToday := ledger.TodayTotals(txns, tx.Date).Expense
			if spentToday > limits.Daily {
				settings, serr := loadSettings(h.Store, user.ID)
				if serr != nil {
					settings = ledger.DefaultSettings()
				}
				resp["alert"] = gin.H{
					"severity": ledger.SeverityWarning,
					"message": i18n.T(settings.Language, "alert.daily_budget_exceeded",
						i18n.Amount(spentToday-limits.Daily), settings.Currency),
					"over": spentToday - limits.Daily,
				}
			}
		}
	}

	util.Success(c, resp)
}

// Delete removes one transaction by id and persists the list. An unknown id
// is a silent no-op, not an error.
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	id := c.Param("id")
	txns, err := loadTransactions(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	txns, removed := ledger.RemoveByID(txns, id)
	if removed {
		if err := h.Store.Set(user.ID, models.DocTransactions, txns); err != nil {
			util.Error(c, http.StatusInternalServerError, "failed to save transactions")
			return
		}
	}

	util.Success(c, util.Response{"success": true})
}
