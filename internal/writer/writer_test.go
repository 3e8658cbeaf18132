package writer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kmwangi/mpesa-wrapped/internal/models"
)

func sampleSummary() models.FinancialSummary {
	return models.FinancialSummary{
		TotalTransactions:   1,
		TotalSent:           200,
		NetChange:           -200,
		SpendingPersonality: "The Balanced",
		Highlights:          []string{"You made 1 transactions this year"},
		Transactions: []models.Transaction{
			{
				Date:      time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC),
				Type:      models.TypeSent,
				Amount:    200,
				Recipient: "Uber Kenya",
				Sender:    models.UnknownParty,
				Category:  "Transport",
				Balance:   800,
				Details:   "Uber ride",
			},
		},
	}
}

func TestSummaryWriterOmitsTransactions(t *testing.T) {
	var buf bytes.Buffer
	w := &SummaryWriter{IncludeTransactions: false}
	if err := w.Write(&buf, sampleSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["transactions"] != nil {
		t.Error("transactions should be omitted")
	}
	if decoded["spendingPersonality"] != "The Balanced" {
		t.Errorf("spendingPersonality = %v", decoded["spendingPersonality"])
	}
}

func TestSummaryWriterIncludesTransactions(t *testing.T) {
	var buf bytes.Buffer
	w := &SummaryWriter{IncludeTransactions: true}
	if err := w.Write(&buf, sampleSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Uber ride") {
		t.Error("transaction details missing from output")
	}
}

func TestWriteTransactionsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTransactionsCSV(&buf, sampleSummary().Transactions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(records))
	}
	row := records[1]
	if row[0] != "2024-01-06 09:00:00" {
		t.Errorf("date column = %q", row[0])
	}
	if row[1] != "sent" || row[2] != "200.00" || row[3] != "Uber Kenya" {
		t.Errorf("unexpected row: %v", row)
	}
}

func TestWriteTransactionsCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	if err := WriteTransactionsCSVFile(path, sampleSummary().Transactions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(records))
	}
	if records[1][3] != "Uber Kenya" {
		t.Errorf("recipient column = %q", records[1][3])
	}
}

func TestWriteTransactionsCSVZeroDate(t *testing.T) {
	txns := []models.Transaction{{Type: models.TypeOther, Details: "bad row"}}

	var buf bytes.Buffer
	if err := WriteTransactionsCSV(&buf, txns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, _ := csv.NewReader(&buf).ReadAll()
	if records[1][0] != "" {
		t.Errorf("zero date should render empty, got %q", records[1][0])
	}
}
