// Package classify maps free-text transaction descriptions to a fixed
// category vocabulary via ordered keyword rules.
package classify

import (
	"strings"

	"github.com/kmwangi/mpesa-wrapped/internal/models"
)

// Category labels.
const (
	CategoryAirtime    = "Airtime & Data"
	CategoryUtilities  = "Utilities"
	CategoryShopping   = "Shopping"
	CategoryFood       = "Food & Dining"
	CategoryTransport  = "Transport"
	CategoryWithdrawal = "Cash Withdrawal"
	CategoryFees       = "Fees & Charges"
	CategoryIncome     = "Income"
	CategoryTransfers  = "Transfers"
	CategoryOther      = "Other"
)

// rule is one keyword set mapped to a category. Rules are evaluated
// top-to-bottom and the first match wins, so order is part of the contract:
// "restaurant atm" is Food & Dining because the food rule precedes the
// withdrawal rule.
type rule struct {
	keywords []string
	category string
}

var rules = []rule{
	{[]string{"airtime", "bundle"}, CategoryAirtime},
	{[]string{"water", "electricity", "kplc", "utility"}, CategoryUtilities},
	{[]string{"supermarket", "shop", "store"}, CategoryShopping},
	{[]string{"restaurant", "food", "eat"}, CategoryFood},
	{[]string{"transport", "uber", "taxi", "matatu"}, CategoryTransport},
	{[]string{"withdraw", "atm", "agent"}, CategoryWithdrawal},
	{[]string{"fee", "overdraft"}, CategoryFees},
}

// Categorize assigns a category label from the description text, falling
// back on the transaction type when no keyword matches.
func Categorize(details string, txType models.TransactionType) string {
	lower := strings.ToLower(details)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}

	switch txType {
	case models.TypeReceived:
		return CategoryIncome
	case models.TypeSent:
		return CategoryTransfers
	default:
		return CategoryOther
	}
}
