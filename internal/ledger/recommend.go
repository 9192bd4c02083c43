package ledger

import "github.com/charlesmagnus93/epargnePro/internal/i18n"

// Recommendation severities.
const (
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeveritySuccess = "success"
)

// Recommendation is one rule-based advice item.
type Recommendation struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// topCategoryShareThreshold is the expense share (percent) above which a
// single category is called out.
const topCategoryShareThreshold = 40

// Recommendations evaluates the fixed rule set in a fixed order. Rules are
// independent: each appends zero or one item and none suppresses another.
func Recommendations(txns []Transaction, ref string, limits BudgetLimits, fund EmergencyFund, lang, currency string) []Recommendation {
	recs := []Recommendation{}

	month := MonthTotals(txns, ref)
	today := TodayTotals(txns, ref)

	// 1. monthly deficit
	if month.Expense > month.Income {
		recs = append(recs, Recommendation{
			Severity: SeverityWarning,
			Message:  i18n.T(lang, "recommendation.deficit", i18n.Amount(month.Expense-month.Income), currency),
		})
	}

	// 2. one category dominating the expenses
	all := AllTimeTotals(txns)
	cats := GroupByCategory(txns, nil)
	if top, share, ok := TopExpenseCategory(cats, all.Expense); ok && share > topCategoryShareThreshold {
		recs = append(recs, Recommendation{
			Severity: SeverityInfo,
			Message:  i18n.T(lang, "recommendation.top_category", i18n.Percent(share), top.Category),
		})
	}

	// 3. trailing-30-day average daily spend over the daily limit
	trailing := WindowTotals(txns, AddDays(ref, -29), ref)
	avgDailyExpense := trailing.Expense / 30
	if limits.Daily > 0 && avgDailyExpense > limits.Daily {
		recs = append(recs, Recommendation{
			Severity: SeverityWarning,
			Message:  i18n.T(lang, "recommendation.daily_average", i18n.Amount(avgDailyExpense-limits.Daily), currency),
		})
	}

	// 4. monthly surplus worth saving
	if month.Balance > 0.15*limits.Monthly {
		recs = append(recs, Recommendation{
			Severity: SeveritySuccess,
			Message:  i18n.T(lang, "recommendation.surplus", i18n.Amount(month.Balance), currency),
		})
	}

	// 5. emergency fund below 30% of its goal
	if fund.Goal > 0 && fund.Balance < 0.3*fund.Goal {
		reached := fund.Balance / fund.Goal * 100
		recs = append(recs, Recommendation{
			Severity: SeverityInfo,
			Message:  i18n.T(lang, "recommendation.fund_low", i18n.WholePercent(reached)),
		})
	}

	// 6. daily budget already blown today
	if limits.Daily > 0 && today.Expense > limits.Daily {
		recs = append(recs, Recommendation{
			Severity: SeverityWarning,
			Message:  i18n.T(lang, "recommendation.daily_exceed"),
		})
	}

	return recs
}
