package ledger

// Budget status values per period.
const (
	StatusOK       = "ok"
	StatusWarning  = "warning"
	StatusExceeded = "exceeded"
)

// BudgetStatus classifies spending against a limit. Computed fresh on every
// call, nothing is persisted. A non-positive limit yields percentage 0 and
// StatusOK so callers never see NaN or Inf; the budget handler rejects
// non-positive limits on write, making this a belt for hand-edited documents.
func BudgetStatus(spent, limit float64) (status string, percentage float64) {
	if limit <= 0 {
		return StatusOK, 0
	}
	percentage = spent / limit * 100
	switch {
	case percentage > 100:
		return StatusExceeded, percentage
	case percentage > 80:
		return StatusWarning, percentage
	default:
		return StatusOK, percentage
	}
}

// PeriodReport is the budget status of one period (daily/weekly/monthly).
type PeriodReport struct {
	Period     string  `json:"period"`
	Spent      float64 `json:"spent"`
	Limit      float64 `json:"limit"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

// BudgetReport evaluates the three periods against their limits at the
// reference date: the day itself, the trailing week and the calendar month.
func BudgetReport(txns []Transaction, ref string, limits BudgetLimits) []PeriodReport {
	periods := []struct {
		name  string
		spent float64
		limit float64
	}{
		{"daily", TodayTotals(txns, ref).Expense, limits.Daily},
		{"weekly", WeekTotals(txns, ref).Expense, limits.Weekly},
		{"monthly", MonthTotals(txns, ref).Expense, limits.Monthly},
	}

	out := make([]PeriodReport, 0, len(periods))
	for _, p := range periods {
		status, pct := BudgetStatus(p.spent, p.limit)
		out = append(out, PeriodReport{
			Period:     p.name,
			Spent:      p.spent,
			Limit:      p.limit,
			Remaining:  p.limit - p.spent,
			Percentage: pct,
			Status:     status,
		})
	}
	return out
}
