package ledger

import "time"

const dateLayout = "2006-01-02"

// DateOf formats a time as a calendar date string.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}

// AddDays shifts a YYYY-MM-DD date by n calendar days. Invalid input is
// returned unchanged; handlers validate dates before they reach the engine.
func AddDays(date string, n int) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(dateLayout)
}

// monthOf returns the YYYY-MM prefix of a date.
func monthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// inWindow reports whether date falls within [from, to] inclusive.
// Zero-padded ISO dates compare correctly as strings.
func inWindow(date, from, to string) bool {
	return date >= from && date <= to
}

// Totals is an income/expense pair with its balance.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// SumByKind sums the amounts of all transactions of the given kind whose
// date falls within [from, to] inclusive.
func SumByKind(txns []Transaction, kind, from, to string) float64 {
	var sum float64
	for _, t := range txns {
		if t.Kind == kind && inWindow(t.Date, from, to) {
			sum += t.Amount
		}
	}
	return sum
}

// WindowTotals computes income, expense and balance over [from, to].
func WindowTotals(txns []Transaction, from, to string) Totals {
	income := SumByKind(txns, KindIncome, from, to)
	expense := SumByKind(txns, KindExpense, from, to)
	return Totals{Income: income, Expense: expense, Balance: income - expense}
}

// TodayTotals sums the single reference date.
func TodayTotals(txns []Transaction, ref string) Totals {
	return WindowTotals(txns, ref, ref)
}

// WeekTotals covers the trailing week window [ref-7d, ref] inclusive.
func WeekTotals(txns []Transaction, ref string) Totals {
	return WindowTotals(txns, AddDays(ref, -7), ref)
}

// MonthTotals covers the calendar month of the reference date.
func MonthTotals(txns []Transaction, ref string) Totals {
	month := monthOf(ref)
	var income, expense float64
	for _, t := range txns {
		if monthOf(t.Date) != month {
			continue
		}
		if t.Kind == KindIncome {
			income += t.Amount
		} else {
			expense += t.Amount
		}
	}
	return Totals{Income: income, Expense: expense, Balance: income - expense}
}

// AllTimeTotals sums the full history.
func AllTimeTotals(txns []Transaction) Totals {
	var income, expense float64
	for _, t := range txns {
		if t.Kind == KindIncome {
			income += t.Amount
		} else {
			expense += t.Amount
		}
	}
	return Totals{Income: income, Expense: expense, Balance: income - expense}
}

// CategoryTotals is the income/expense breakdown for one category.
type CategoryTotals struct {
	Category string  `json:"category"`
	Income   float64 `json:"income"`
	Expense  float64 `json:"expense"`
}

// GroupByCategory sums income and expense per category over the transactions
// matched by pred (nil matches everything). Categories appear in first-seen
// order. The input is never mutated.
func GroupByCategory(txns []Transaction, pred func(Transaction) bool) []CategoryTotals {
	var out []CategoryTotals
	index := make(map[string]int)
	for _, t := range txns {
		if pred != nil && !pred(t) {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryTotals{Category: t.Category})
		}
		if t.Kind == KindIncome {
			out[i].Income += t.Amount
		} else {
			out[i].Expense += t.Amount
		}
	}
	return out
}

// InMonth builds a predicate matching transactions in the reference month.
func InMonth(ref string) func(Transaction) bool {
	month := monthOf(ref)
	return func(t Transaction) bool { return monthOf(t.Date) == month }
}

// TopExpenseCategory returns the category with the highest expense sum and
// its share (in percent) of totalExpense. ok is false when there are no
// expenses to rank or totalExpense is zero.
func TopExpenseCategory(cats []CategoryTotals, totalExpense float64) (top CategoryTotals, share float64, ok bool) {
	for _, c := range cats {
		if c.Expense > top.Expense {
			top = c
		}
	}
	if top.Expense <= 0 || totalExpense <= 0 {
		return CategoryTotals{}, 0, false
	}
	return top, top.Expense / totalExpense * 100, true
}

// DailyPoint is one day of the daily series.
type DailyPoint struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// DailySeries produces exactly days points, one per calendar date ending at
// ref inclusive, zero-filled for days without transactions. It is re-derived
// from the raw list on every call, never maintained incrementally.
func DailySeries(txns []Transaction, ref string, days int) []DailyPoint {
	if days <= 0 {
		return []DailyPoint{}
	}

	points := make([]DailyPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := AddDays(ref, -(days - 1 - i))
		points[i] = DailyPoint{Date: date}
		index[date] = i
	}

	for _, t := range txns {
		i, ok := index[t.Date]
		if !ok {
			continue
		}
		if t.Kind == KindIncome {
			points[i].Income += t.Amount
		} else {
			points[i].Expense += t.Amount
		}
	}

	for i := range points {
		points[i].Balance = points[i].Income - points[i].Expense
	}
	return points
}
