package parser

import (
	"testing"

	"github.com/kmwangi/mpesa-wrapped/internal/models"
	"github.com/kmwangi/mpesa-wrapped/internal/summary"
)

const sampleExport = `Completion Time,Details,Paid In,Withdrawn,Balance,Other Party
2024-01-05 10:00:00,Salary,1000,0,1000,ACME LTD
2024-01-06 09:00:00,Uber ride,0,200,800,Uber Kenya
`

func TestParseCSV(t *testing.T) {
	txns, err := ParseCSV(sampleExport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}

	if txns[0].Type != models.TypeReceived {
		t.Errorf("txn[0].Type = %q, want received", txns[0].Type)
	}
	if txns[0].Amount != 1000 {
		t.Errorf("txn[0].Amount = %v, want 1000", txns[0].Amount)
	}
	if txns[0].Sender != "ACME LTD" {
		t.Errorf("txn[0].Sender = %q, want ACME LTD", txns[0].Sender)
	}
	if txns[0].Category != "Income" {
		t.Errorf("txn[0].Category = %q, want Income", txns[0].Category)
	}

	if txns[1].Type != models.TypeSent {
		t.Errorf("txn[1].Type = %q, want sent", txns[1].Type)
	}
	if txns[1].Category != "Transport" {
		t.Errorf("txn[1].Category = %q, want Transport", txns[1].Category)
	}
	if txns[1].Balance != 800 {
		t.Errorf("txn[1].Balance = %v, want 800", txns[1].Balance)
	}
}

// The two-row statement above, folded end to end.
func TestParseCSVEndToEnd(t *testing.T) {
	txns, err := ParseCSV(sampleExport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := summary.Build(txns)
	if s.TotalTransactions != 2 {
		t.Errorf("TotalTransactions = %d, want 2", s.TotalTransactions)
	}
	if s.TotalReceived != 1000 {
		t.Errorf("TotalReceived = %v, want 1000", s.TotalReceived)
	}
	if s.TotalSent != 200 {
		t.Errorf("TotalSent = %v, want 200", s.TotalSent)
	}
	if s.NetChange != 800 {
		t.Errorf("NetChange = %v, want 800", s.NetChange)
	}
	if len(s.CategoryBreakdown) != 1 {
		t.Fatalf("CategoryBreakdown length = %d, want 1", len(s.CategoryBreakdown))
	}
	top := s.CategoryBreakdown[0]
	if top.Name != "Transport" || top.Value != 200 || top.Percentage != 100 {
		t.Errorf("top category = %+v, want {Transport 200 100}", top)
	}
}

func TestParseCSVHeaderAliases(t *testing.T) {
	content := "completed time,DESCRIPTION,paid in,WITHDRAWN,balance,Initiator Name\n" +
		"2024-02-01 08:30:00,Grocery shop,0,\"1,500.00\",\"3,250.75\",NAIVAS\n"

	txns, err := ParseCSV(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(txns))
	}

	txn := txns[0]
	if txn.Amount != 1500 {
		t.Errorf("Amount = %v, want 1500", txn.Amount)
	}
	if txn.Balance != 3250.75 {
		t.Errorf("Balance = %v, want 3250.75", txn.Balance)
	}
	if txn.Recipient != "NAIVAS" {
		t.Errorf("Recipient = %q, want NAIVAS", txn.Recipient)
	}
	if txn.Date.IsZero() {
		t.Error("Date should parse from 'completed time' alias")
	}
}

// A row with paid in > 0 and an airtime description ends up type airtime,
// not received; the category keeps the pre-override classification input.
func TestParseCSVOverridePrecedence(t *testing.T) {
	content := "Completion Time,Details,Paid In,Withdrawn,Balance\n" +
		"2024-03-01 12:00:00,airtime bundle,500,0,1500\n" +
		"2024-03-02 12:00:00,Customer Withdrawal at Agent,0,1000,500\n" +
		"2024-03-03 12:00:00,buy bundles then agent,0,50,450\n"

	txns, err := ParseCSV(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if txns[0].Type != models.TypeAirtime {
		t.Errorf("txn[0].Type = %q, want airtime", txns[0].Type)
	}
	if txns[1].Type != models.TypeWithdrawn {
		t.Errorf("txn[1].Type = %q, want withdrawn", txns[1].Type)
	}
	// both overrides match; the withdrawal check runs second and wins
	if txns[2].Type != models.TypeWithdrawn {
		t.Errorf("txn[2].Type = %q, want withdrawn", txns[2].Type)
	}
}

// Rows with unparseable dates are kept, not dropped.
func TestParseCSVKeepsInvalidDates(t *testing.T) {
	content := "Completion Time,Details,Paid In,Withdrawn,Balance\n" +
		"bogus,Salary,1000,0,1000\n"

	txns, err := ParseCSV(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(txns))
	}
	if !txns[0].Date.IsZero() {
		t.Errorf("Date = %v, want zero sentinel", txns[0].Date)
	}
}

func TestParseCSVUnknownParties(t *testing.T) {
	content := "Completion Time,Details,Paid In,Withdrawn,Balance\n" +
		"2024-01-05 10:00:00,Salary,1000,0,1000\n"

	txns, err := ParseCSV(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txns[0].Recipient != models.UnknownParty {
		t.Errorf("Recipient = %q, want Unknown", txns[0].Recipient)
	}
	if txns[0].Sender != models.UnknownParty {
		t.Errorf("Sender = %q, want Unknown", txns[0].Sender)
	}
}

func TestParseCSVMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"header only", "Completion Time,Details,Paid In,Withdrawn,Balance\n"},
		{"broken quoting", "Completion Time,Details\n\"unterminated,oops\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCSV(tt.content); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
