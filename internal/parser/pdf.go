package parser

import (
	"regexp"
	"strings"

	"github.com/kmwangi/mpesa-wrapped/internal/classify"
	"github.com/kmwangi/mpesa-wrapped/internal/models"
)

// Statement PDF transaction line:
// DATETIME  DESCRIPTION  Completed  PAID_IN  WITHDRAWN  BALANCE
// Amounts may carry a "KSh" prefix and comma separators; spacing varies
// between embedded text and OCR output.
var pdfTxnPattern = regexp.MustCompile(
	`(?i)^\s*(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2})\s+(.+?)\s+Completed\s+` +
		`(KSh ?)?([\d,]+\.?\d*)\s+(KSh ?)?([\d,]+\.?\d*)\s+(KSh ?)?([\d,]+\.?\d*)\s*$`,
)

// splits a description on the "to " marker to recover the recipient
var toSplitPattern = regexp.MustCompile(`(?i)to\s+`)

// ParseStatementText scans extracted document text line by line for
// transaction-shaped records. Non-matching lines (headers, page breaks,
// OCR noise) are skipped silently; matching lines with an unparseable
// timestamp are dropped too. Returns a *NoTransactionsError carrying a
// sample of the text when nothing matched.
func ParseStatementText(text string) ([]models.Transaction, error) {
	var transactions []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		m := pdfTxnPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		date := ParseDate(m[1])
		if date.IsZero() {
			continue
		}

		details := strings.TrimSpace(m[2])
		paidIn := ParseAmount(m[4])
		withdrawn := ParseAmount(m[6])
		balance := ParseAmount(m[8])

		txType, amount := initialType(paidIn, withdrawn)
		txType = refineTypePDF(txType, details)
		category := classify.Categorize(details, txType)

		transactions = append(transactions, models.Transaction{
			Date:      date,
			Type:      txType,
			Amount:    amount,
			Recipient: extractRecipient(details),
			Sender:    models.UnknownParty,
			Category:  category,
			Balance:   balance,
			Details:   details,
		})
	}

	if len(transactions) == 0 {
		return nil, &NoTransactionsError{Sample: textSample(text, 1000)}
	}
	return transactions, nil
}

// refineTypePDF applies the description keyword overrides for the document
// path. The second check can override the first.
func refineTypePDF(txType models.TransactionType, details string) models.TransactionType {
	lower := strings.ToLower(details)
	if strings.Contains(lower, "airtime") || strings.Contains(lower, "buy goods") || strings.Contains(lower, "bundles") {
		txType = models.TypeAirtime
	}
	if strings.Contains(lower, "withdraw") || strings.Contains(lower, "agent") {
		txType = models.TypeWithdrawn
	}
	return txType
}

// extractRecipient pulls the counterparty out of a description like
// "Customer Transfer to JANE WANJIKU" or "Pay Bill to KPLC". The document
// format has no dedicated counterparty column, so anything without a
// paybill/to marker stays Unknown. When the marker repeats, only the
// segment up to the next marker is the counterparty.
func extractRecipient(details string) string {
	lower := strings.ToLower(details)
	if !strings.Contains(lower, "paybill") && !strings.Contains(lower, "to ") {
		return models.UnknownParty
	}
	parts := toSplitPattern.Split(details, -1)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return models.UnknownParty
	}
	return strings.TrimSpace(parts[1])
}

func textSample(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return text[:n]
}
