// Package mockdata produces a synthetic statement summary for the demo
// flow, bypassing parsing entirely.
package mockdata

import (
	"math/rand"
	"time"

	"github.com/kmwangi/mpesa-wrapped/internal/models"
	"github.com/kmwangi/mpesa-wrapped/internal/summary"
)

const (
	mockYear      = 2024
	incomeCount   = 50
	spendingCount = 150
)

var (
	senders    = []string{"Employer", "Client", "Freelance Payment"}
	recipients = []string{"Supermarket", "Restaurant", "Uber", "Agent", "Friend"}

	// categories here are randomized independently of the classifier; demo
	// output must not be used to validate classification rules
	categories = []string{"Shopping", "Food & Dining", "Transport", "Cash Withdrawal", "Transfers"}

	spendTypes = []models.TransactionType{models.TypeSent, models.TypeWithdrawn}
)

// Generate returns a summary over 200 randomized transactions: 50 received
// and 150 sent or withdrawn, all dated within the mock year.
func Generate() models.FinancialSummary {
	transactions := make([]models.Transaction, 0, incomeCount+spendingCount)

	for i := 0; i < incomeCount; i++ {
		transactions = append(transactions, models.Transaction{
			Date:     randomDate(),
			Type:     models.TypeReceived,
			Amount:   rand.Float64()*50000 + 10000,
			Sender:   senders[rand.Intn(len(senders))],
			Category: "Income",
			Balance:  50000,
			Details:  "Salary payment",
		})
	}

	for i := 0; i < spendingCount; i++ {
		transactions = append(transactions, models.Transaction{
			Date:      randomDate(),
			Type:      spendTypes[rand.Intn(len(spendTypes))],
			Amount:    rand.Float64()*5000 + 100,
			Recipient: recipients[rand.Intn(len(recipients))],
			Category:  categories[rand.Intn(len(categories))],
			Balance:   30000,
			Details:   "Purchase",
		})
	}

	return summary.Build(transactions)
}

func randomDate() time.Time {
	month := time.Month(rand.Intn(12) + 1)
	day := rand.Intn(28) + 1
	return time.Date(mockYear, month, day, 0, 0, 0, 0, time.UTC)
}
