package parser

import (
	"encoding/csv"
	"strings"

	"github.com/kmwangi/mpesa-wrapped/internal/classify"
	"github.com/kmwangi/mpesa-wrapped/internal/models"
)

// Column aliases seen across M-PESA exports. Keys are normalized headers
// (lowercase, single-spaced); values are the canonical field name.
var headerAliases = map[string]string{
	"paid in":         "paidin",
	"withdrawn":       "withdrawn",
	"completion time": "time",
	"completed time":  "time",
	"details":         "details",
	"description":     "details",
	"recipient":       "recipient",
	"initiator name":  "initiator",
	"other party":     "otherparty",
	"sender":          "sender",
	"balance":         "balance",
}

// ParseCSV parses a delimited statement export with a header row into the
// full transaction list, in source order. Rows are never dropped here, even
// when a date or amount fails to parse; the aggregator sees whatever the
// export contained. Structural CSV errors are fatal and surface to the
// caller.
func ParseCSV(content string) ([]models.Transaction, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, malformedInput(err)
	}
	if len(records) < 2 {
		return nil, malformedInput(errMissingRows)
	}

	cols := mapColumns(records[0])

	transactions := make([]models.Transaction, 0, len(records)-1)
	for _, record := range records[1:] {
		transactions = append(transactions, parseRow(record, cols))
	}
	return transactions, nil
}

// mapColumns resolves the header row against the known aliases.
func mapColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		canonical, ok := headerAliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		// first occurrence wins when an export repeats a column
		if _, seen := cols[canonical]; !seen {
			cols[canonical] = i
		}
	}
	return cols
}

func parseRow(record []string, cols map[string]int) models.Transaction {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	paidIn := ParseAmount(field("paidin"))
	withdrawn := ParseAmount(field("withdrawn"))
	date := ParseDate(field("time"))
	details := firstNonEmpty("", field("details"))

	txType, amount := initialType(paidIn, withdrawn)

	// category uses the initial type; the keyword overrides below only
	// refine the type, never the category
	category := classify.Categorize(details, txType)

	return models.Transaction{
		Date:      date,
		Type:      refineTypeCSV(txType, details),
		Amount:    amount,
		Recipient: firstNonEmpty(models.UnknownParty, field("recipient"), field("initiator"), field("otherparty")),
		Sender:    firstNonEmpty(models.UnknownParty, field("sender"), field("otherparty")),
		Category:  category,
		Balance:   ParseAmount(field("balance")),
		Details:   details,
	}
}

// initialType derives the coarse type and amount from the paid-in and
// withdrawn columns: paid-in wins when both are positive.
func initialType(paidIn, withdrawn float64) (models.TransactionType, float64) {
	switch {
	case paidIn > 0:
		return models.TypeReceived, paidIn
	case withdrawn > 0:
		return models.TypeSent, withdrawn
	default:
		return models.TypeOther, 0
	}
}

// refineTypeCSV applies the description keyword overrides for the tabular
// path. The checks run in order and independently, so a description
// matching both ends up withdrawn.
func refineTypeCSV(txType models.TransactionType, details string) models.TransactionType {
	lower := strings.ToLower(details)
	if strings.Contains(lower, "airtime") || strings.Contains(lower, "buy bundles") {
		txType = models.TypeAirtime
	}
	if strings.Contains(lower, "withdraw") || strings.Contains(lower, "agent") {
		txType = models.TypeWithdrawn
	}
	return txType
}
