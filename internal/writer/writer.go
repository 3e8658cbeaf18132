// Package writer exports a financial summary to files for the CLI.
package writer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kmwangi/mpesa-wrapped/internal/models"
)

// SummaryWriter writes a summary as JSON, optionally with the transaction
// list attached.
type SummaryWriter struct {
	IncludeTransactions bool
}

// WriteToFile writes the summary JSON to the given path.
func (w *SummaryWriter) WriteToFile(path string, s models.FinancialSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, s)
}

// Write encodes the summary as indented JSON.
func (w *SummaryWriter) Write(out io.Writer, s models.FinancialSummary) error {
	if !w.IncludeTransactions {
		s.Transactions = nil
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}

// WriteTransactionsCSVFile writes the normalized transaction list to a CSV
// file at the given path.
func WriteTransactionsCSVFile(path string, transactions []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return WriteTransactionsCSV(f, transactions)
}

// WriteTransactionsCSV writes the normalized transaction list in CSV form.
func WriteTransactionsCSV(out io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"Date", "Type", "Amount", "Recipient", "Sender", "Category", "Balance", "Details"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range transactions {
		date := ""
		if !t.Date.IsZero() {
			date = t.Date.Format("2006-01-02 15:04:05")
		}
		row := []string{
			date,
			string(t.Type),
			formatAmount(t.Amount),
			t.Recipient,
			t.Sender,
			t.Category,
			formatAmount(t.Balance),
			t.Details,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func formatAmount(amount float64) string {
	if amount == 0 {
		return ""
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
