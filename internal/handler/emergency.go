package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/charlesmagnus93/epargnePro/internal/ledger"
	"github.com/charlesmagnus93/epargnePro/internal/middleware"
	"github.com/charlesmagnus93/epargnePro/internal/models"
	"github.com/charlesmagnus93/epargnePro/internal/store"
	"github.com/charlesmagnus93/epargnePro/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmergencyHandler serves the emergency fund document and its guarded
// deposit/withdrawal command.
type EmergencyHandler struct {
	Store *store.Store
}

func NewEmergencyHandler(st *store.Store) *EmergencyHandler {
	return &EmergencyHandler{Store: st}
}

func (h *EmergencyHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	fund, err := loadFund(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch emergency fund")
		return
	}

	util.Success(c, util.Response{"emergency": fund})
}

// Put overwrites the whole document, last write wins. The goal must stay
// positive; balance and history are taken as given.
func (h *EmergencyHandler) Put(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var fund ledger.EmergencyFund
	if err := c.ShouldBindJSON(&fund); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid emergency fund document")
		return
	}
	if fund.Goal <= 0 {
		util.Error(c, http.StatusBadRequest, "goal must be positive")
		return
	}
	if fund.Transactions == nil {
		fund.Transactions = []ledger.FundEntry{}
	}

	if err := h.Store.Set(user.ID, models.DocEmergency, fund); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to update emergency fund")
		return
	}

	util.Success(c, util.Response{"emergency": fund})
}

type fundEntryReq struct {
	Kind   string  `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount float64 `json:"amount" binding:"required"`
	Reason string  `json:"reason" binding:"max=255"`
}

// AddEntry applies a deposit or withdrawal. A withdrawal exceeding the
// balance is rejected here, before any mutation, so a client bypassing its
// own check cannot drive the balance negative.
func (h *EmergencyHandler) AddEntry(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req fundEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "type and amount are required")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid amount")
		return
	}

	fund, err := loadFund(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch emergency fund")
		return
	}

	entry := ledger.FundEntry{
		ID:     uuid.NewString(),
		Kind:   req.Kind,
		Amount: req.Amount,
		Reason: req.Reason,
		Date:   time.Now().UTC().Format(time.RFC3339),
	}

	fund, err = ledger.ApplyFundEntry(fund, entry)
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			util.Error(c, http.StatusBadRequest, "insufficient funds")
			return
		}
		util.Error(c, http.StatusBadRequest, "invalid fund entry")
		return
	}

	if err := h.Store.Set(user.ID, models.DocEmergency, fund); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to update emergency fund")
		return
	}

	util.Success(c, util.Response{"emergency": fund, "entry": entry})
}
