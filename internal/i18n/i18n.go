// Package i18n holds the user-facing message catalog. French is the default
// language; English is the only alternative.
package i18n

import (
	"fmt"
	"math"
	"strconv"
)

const (
	LangFR = "fr"
	LangEN = "en"
)

var messages = map[string]map[string]string{
	LangFR: {
		"recommendation.deficit":       "Attention: vos dépenses dépassent vos revenus de %s %s ce mois-ci.",
		"recommendation.top_category":  "%s%% de vos dépenses vont vers %s. Explorez des alternatives pour réduire ces coûts.",
		"recommendation.daily_average": "Votre moyenne de dépenses journalières dépasse votre budget de %s %s.",
		"recommendation.surplus":       "Excellent! Vous avez un excédent de %s %s ce mois-ci. Pensez à alimenter votre caisse de sécurité!",
		"recommendation.fund_low":      "Votre caisse de sécurité est à %s%%. Essayez d'épargner régulièrement.",
		"recommendation.daily_exceed":  "Vous avez dépassé votre budget journalier. Essayez de limiter les dépenses non essentielles.",
		"alert.daily_budget_exceeded":  "Budget journalier dépassé de %s %s!",
	},
	LangEN: {
		"recommendation.deficit":       "Warning: your expenses exceed your income by %s %s this month.",
		"recommendation.top_category":  "%s%% of your expenses go to %s. Look for alternatives to reduce these costs.",
		"recommendation.daily_average": "Your average daily spending exceeds your budget by %s %s.",
		"recommendation.surplus":       "Excellent! You have a surplus of %s %s this month. Consider funding your emergency fund!",
		"recommendation.fund_low":      "Your emergency fund is at %s%%. Try to save regularly.",
		"recommendation.daily_exceed":  "You have exceeded your daily budget. Try to limit non-essential spending.",
		"alert.daily_budget_exceeded":  "Daily budget exceeded by %s %s!",
	},
}

// T formats the message for the given language, falling back to French for
// unknown languages or keys.
func T(lang, key string, args ...any) string {
	m, ok := messages[lang]
	if !ok {
		m = messages[LangFR]
	}
	format, ok := m[key]
	if !ok {
		format = messages[LangFR][key]
	}
	if format == "" {
		return key
	}
	return fmt.Sprintf(format, args...)
}

// Amount renders a monetary value without a trailing ".0" for whole numbers.
func Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Percent renders a percentage with one decimal, e.g. "44.4".
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// WholePercent renders a percentage rounded to the nearest integer, e.g. "44".
func WholePercent(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
