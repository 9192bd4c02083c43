// Package ledger holds the domain types and the aggregation engine: pure
// functions deriving time-windowed sums, category breakdowns, daily series,
// budget status and recommendations from a raw transaction list.
package ledger

// Transaction kinds.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Emergency fund entry kinds.
const (
	FundDeposit    = "deposit"
	FundWithdrawal = "withdrawal"
)

// Transaction is a single income or expense record. Immutable once created,
// removed only by full deletion. The list is kept newest first: new
// transactions are prepended and that insertion order is the display order.
type Transaction struct {
	ID          string  `json:"id"`
	Kind        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Time        string  `json:"time"` // wall-clock HH:MM
}

// BudgetLimits are the per-period expense ceilings. Used for status and
// alerting only, never for enforcement.
type BudgetLimits struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

// FundEntry is one deposit into or withdrawal from the emergency fund.
type FundEntry struct {
	ID     string  `json:"id"`
	Kind   string  `json:"type"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
	Date   string  `json:"date"` // RFC3339 timestamp
}

// EmergencyFund is a separate savings balance with its own history and a
// goal target.
type EmergencyFund struct {
	Balance      float64     `json:"balance"`
	Goal         float64     `json:"goal"`
	Transactions []FundEntry `json:"transactions"`
}

// Settings holds per-user display preferences. Currency is a label only,
// never converted.
type Settings struct {
	Currency string `json:"currency"`
	Language string `json:"language"`
}

// Defaults created at signup, matching what a fresh account starts with.
func DefaultBudgetLimits() BudgetLimits {
	return BudgetLimits{Daily: 5000, Weekly: 30000, Monthly: 100000}
}

func DefaultEmergencyFund() EmergencyFund {
	return EmergencyFund{Balance: 0, Goal: 50000, Transactions: []FundEntry{}}
}

func DefaultSettings() Settings {
	return Settings{Currency: "FCFA", Language: "fr"}
}
