package handler

import (
	"time"

	"github.com/charlesmagnus93/epargnePro/internal/ledger"
	"github.com/charlesmagnus93/epargnePro/internal/models"
	"github.com/charlesmagnus93/epargnePro/internal/store"

	"github.com/gin-gonic/gin"
)

// Document loaders shared by the handlers. A user who has never written a
// document gets the signup defaults, the same way the original store served
// missing keys.

func loadTransactions(s *store.Store, userID uint) ([]ledger.Transaction, error) {
	txns := []ledger.Transaction{}
	if _, err := s.Get(userID, models.DocTransactions, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func loadBudget(s *store.Store, userID uint) (ledger.BudgetLimits, error) {
	limits := ledger.BudgetLimits{}
	found, err := s.Get(userID, models.DocBudget, &limits)
	if err != nil {
		return ledger.BudgetLimits{}, err
	}
	if !found {
		return ledger.DefaultBudgetLimits(), nil
	}
	return limits, nil
}

func loadFund(s *store.Store, userID uint) (ledger.EmergencyFund, error) {
	fund := ledger.EmergencyFund{}
	found, err := s.Get(userID, models.DocEmergency, &fund)
	if err != nil {
		return ledger.EmergencyFund{}, err
	}
	if !found {
		return ledger.DefaultEmergencyFund(), nil
	}
	if fund.Transactions == nil {
		fund.Transactions = []ledger.FundEntry{}
	}
	return fund, nil
}

func loadSettings(s *store.Store, userID uint) (ledger.Settings, error) {
	settings := ledger.Settings{}
	found, err := s.Get(userID, models.DocSettings, &settings)
	if err != nil {
		return ledger.Settings{}, err
	}
	if !found {
		return ledger.DefaultSettings(), nil
	}
	return settings, nil
}

// refDate resolves the reference date for the aggregation endpoints:
// ?date=YYYY-MM-DD, default today.
func refDate(c *gin.Context) (string, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return ledger.DateOf(time.Now()), true
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return "", false
	}
	return dateStr, true
}
