package handler

import (
	"net/http"

	"github.com/charlesmagnus93/epargnePro/internal/ledger"
	"github.com/charlesmagnus93/epargnePro/internal/middleware"
	"github.com/charlesmagnus93/epargnePro/internal/models"
	"github.com/charlesmagnus93/epargnePro/internal/store"
	"github.com/charlesmagnus93/epargnePro/internal/util"

	"github.com/gin-gonic/gin"
)

// BudgetHandler serves the budget limits document.
type BudgetHandler struct {
	Store *store.Store
}

func NewBudgetHandler(st *store.Store) *BudgetHandler {
	return &BudgetHandler{Store: st}
}

func (h *BudgetHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	limits, err := loadBudget(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch budget")
		return
	}

	util.Success(c, util.Response{"budget": limits})
}

// Put overwrites the whole document. There is no partial patch: all three
// limits must be present and positive.
func (h *BudgetHandler) Put(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var limits ledger.BudgetLimits
	if err := c.ShouldBindJSON(&limits); err != nil {
		util.Error(c, http.StatusBadRequest, "daily, weekly and monthly limits are required")
		return
	}
	if limits.Daily <= 0 || limits.Weekly <= 0 || limits.Monthly <= 0 {
		util.Error(c, http.StatusBadRequest, "budget limits must be positive")
		return
	}

	if err := h.Store.Set(user.ID, models.DocBudget, limits); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to update budget")
		return
	}

	util.Success(c, util.Response{"budget": limits})
}
