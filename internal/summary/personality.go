package summary

import (
	"github.com/kmwangi/mpesa-wrapped/internal/classify"
	"github.com/kmwangi/mpesa-wrapped/internal/models"
)

// Personality labels.
const (
	PersonalitySaver      = "The Saver"
	PersonalitySpender    = "The Spender"
	PersonalityHighRoller = "The High Roller"
	PersonalityShopaholic = "The Shopaholic"
	PersonalityFoodie     = "The Foodie"
	PersonalityBalanced   = "The Balanced"
)

// personality picks the heuristic label. Rules run in a fixed precedence
// order and the first match wins. When totalReceived is 0 the savings rate
// is NaN (or -Inf with spend), so the first two rules are not guaranteed
// to short-circuit on zero income.
func personality(s models.FinancialSummary) string {
	savingsRate := (s.TotalReceived - s.TotalSent) / s.TotalReceived

	switch {
	case savingsRate > 0.3:
		return PersonalitySaver
	case savingsRate < -0.2:
		return PersonalitySpender
	case s.AverageTransaction > 5000:
		return PersonalityHighRoller
	case topCategory(s) == classify.CategoryShopping:
		return PersonalityShopaholic
	case topCategory(s) == classify.CategoryFood:
		return PersonalityFoodie
	default:
		return PersonalityBalanced
	}
}

func topCategory(s models.FinancialSummary) string {
	if len(s.CategoryBreakdown) == 0 {
		return ""
	}
	return s.CategoryBreakdown[0].Name
}
