package models

import "time"

// TransactionType classifies the direction of a money movement.
type TransactionType string

const (
	TypeSent      TransactionType = "sent"
	TypeReceived  TransactionType = "received"
	TypeWithdrawn TransactionType = "withdrawn"
	TypeDeposited TransactionType = "deposited"
	TypeAirtime   TransactionType = "airtime"
	TypeOther     TransactionType = "other"
)

// UnknownParty is the sentinel used when a counterparty cannot be resolved.
const UnknownParty = "Unknown"

// Transaction represents a single statement line item.
// Amounts are magnitudes in the statement's currency; the running balance
// is whatever the source stated, never recomputed.
type Transaction struct {
	Date      time.Time       `json:"date"`
	Type      TransactionType `json:"type"`
	Amount    float64         `json:"amount"`
	Recipient string          `json:"recipient,omitempty"`
	Sender    string          `json:"sender,omitempty"`
	Category  string          `json:"category"`
	Balance   float64         `json:"balance"`
	Details   string          `json:"details"`
}

// MonthlyEntry is one calendar month's income and spend, labelled "Jan 2006".
type MonthlyEntry struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// CategoryEntry is one slice of the spend-by-category distribution.
type CategoryEntry struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage int     `json:"percentage"`
}

// RecipientEntry aggregates money sent to a single counterparty.
type RecipientEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// FinancialSummary is the derived view of a statement. It is a pure fold
// over the transaction list it retains; nothing in it is mutated after
// construction.
type FinancialSummary struct {
	TotalTransactions   int              `json:"totalTransactions"`
	TotalSent           float64          `json:"totalSent"`
	TotalReceived       float64          `json:"totalReceived"`
	TotalWithdrawn      float64          `json:"totalWithdrawn"`
	NetChange           float64          `json:"netChange"`
	LargestTransaction  float64          `json:"largestTransaction"`
	AverageTransaction  float64          `json:"averageTransaction"`
	MonthlyData         []MonthlyEntry   `json:"monthlyData"`
	CategoryBreakdown   []CategoryEntry  `json:"categoryBreakdown"`
	TopRecipients       []RecipientEntry `json:"topRecipients"`
	SpendingPersonality string           `json:"spendingPersonality"`
	Highlights          []string         `json:"highlights"`
	Transactions        []Transaction    `json:"transactions"`
}

// StatementKind identifies a supported statement encoding.
type StatementKind string

const (
	KindCSV StatementKind = "csv"
	KindPDF StatementKind = "pdf"
)
