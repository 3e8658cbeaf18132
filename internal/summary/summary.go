// Package summary folds a normalized transaction list into the
// FinancialSummary consumed by the slideshow and analytics views.
package summary

import (
	"fmt"
	"sort"

	"github.com/kmwangi/mpesa-wrapped/internal/models"
)

const monthLabelLayout = "Jan 2006"

// Build derives the full financial summary from a transaction list. It is
// a pure function: the same input always yields the same summary, and the
// input slice is retained but never mutated. An empty list yields a zeroed
// summary; the document parser guards against that case upstream.
func Build(transactions []models.Transaction) models.FinancialSummary {
	var (
		totalSent      float64
		totalReceived  float64
		totalWithdrawn float64
		largest        float64
		nonReceived    int
	)

	monthIndex := make(map[string]int)
	var monthly []models.MonthlyEntry

	categoryTotals := make(map[string]float64)
	var categoryOrder []string

	recipientIndex := make(map[string]int)
	var recipients []models.RecipientEntry

	for _, t := range transactions {
		switch t.Type {
		case models.TypeSent:
			totalSent += t.Amount
		case models.TypeWithdrawn:
			totalSent += t.Amount
			totalWithdrawn += t.Amount
		case models.TypeReceived:
			totalReceived += t.Amount
		}

		if t.Amount > largest {
			largest = t.Amount
		}

		// monthly series keeps first-seen order, not calendar order
		label := t.Date.Format(monthLabelLayout)
		i, ok := monthIndex[label]
		if !ok {
			i = len(monthly)
			monthIndex[label] = i
			monthly = append(monthly, models.MonthlyEntry{Month: label})
		}
		if t.Type == models.TypeReceived {
			monthly[i].Income += t.Amount
		} else {
			monthly[i].Expenses += t.Amount
		}

		if t.Type != models.TypeReceived {
			nonReceived++
			if _, seen := categoryTotals[t.Category]; !seen {
				categoryOrder = append(categoryOrder, t.Category)
			}
			categoryTotals[t.Category] += t.Amount
		}

		if t.Type == models.TypeSent && t.Recipient != "" && t.Recipient != models.UnknownParty {
			j, ok := recipientIndex[t.Recipient]
			if !ok {
				j = len(recipients)
				recipientIndex[t.Recipient] = j
				recipients = append(recipients, models.RecipientEntry{Name: t.Recipient})
			}
			recipients[j].Amount += t.Amount
			recipients[j].Count++
		}
	}

	average := 0.0
	if nonReceived > 0 {
		average = totalSent / float64(nonReceived)
	}

	s := models.FinancialSummary{
		TotalTransactions:  len(transactions),
		TotalSent:          totalSent,
		TotalReceived:      totalReceived,
		TotalWithdrawn:     totalWithdrawn,
		NetChange:          totalReceived - totalSent,
		LargestTransaction: largest,
		AverageTransaction: average,
		MonthlyData:        monthly,
		CategoryBreakdown:  breakdown(categoryTotals, categoryOrder),
		TopRecipients:      topRecipients(recipients),
		Transactions:       transactions,
	}

	s.SpendingPersonality = personality(s)
	s.Highlights = highlights(s)

	return s
}

// breakdown ranks spend categories, top 6, percentages of the non-received
// total.
func breakdown(totals map[string]float64, order []string) []models.CategoryEntry {
	var totalSpend float64
	for _, v := range totals {
		totalSpend += v
	}

	entries := make([]models.CategoryEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, models.CategoryEntry{
			Name:       name,
			Value:      totals[name],
			Percentage: roundPercent(totals[name], totalSpend),
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Value > entries[b].Value
	})
	if len(entries) > 6 {
		entries = entries[:6]
	}
	return entries
}

// topRecipients ranks known counterparties by amount sent, top 5.
func topRecipients(recipients []models.RecipientEntry) []models.RecipientEntry {
	sort.SliceStable(recipients, func(a, b int) bool {
		return recipients[a].Amount > recipients[b].Amount
	})
	if len(recipients) > 5 {
		recipients = recipients[:5]
	}
	return recipients
}

// highlights builds the narrative strings. They quote the summary's own
// numbers, so this runs after every other field is final.
func highlights(s models.FinancialSummary) []string {
	var out []string

	out = append(out, fmt.Sprintf("You made %s transactions this year", formatNumber(float64(s.TotalTransactions))))

	if len(s.MonthlyData) > 0 {
		highest := s.MonthlyData[0]
		for _, m := range s.MonthlyData[1:] {
			if m.Expenses > highest.Expenses {
				highest = m
			}
		}
		out = append(out, fmt.Sprintf("%s was your highest spending month", highest.Month))
	}

	if len(s.TopRecipients) > 0 {
		top := s.TopRecipients[0]
		out = append(out, fmt.Sprintf("You sent money to %s %d times", top.Name, top.Count))
	}

	if s.NetChange > 0 {
		out = append(out, fmt.Sprintf("You saved KES %s this year!", formatNumber(s.NetChange)))
	} else {
		out = append(out, fmt.Sprintf("You spent KES %s more than you received", formatNumber(-s.NetChange)))
	}

	if len(s.CategoryBreakdown) > 0 {
		top := s.CategoryBreakdown[0]
		out = append(out, fmt.Sprintf("%d%% of your spending went to %s", top.Percentage, top.Name))
	}

	return out
}
