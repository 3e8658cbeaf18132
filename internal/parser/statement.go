// Package parser turns raw statement bytes — a delimited export or a
// (possibly scanned) PDF — into a normalized transaction list.
package parser

import (
	"errors"
	"strings"

	"github.com/kmwangi/mpesa-wrapped/internal/extractor"
	"github.com/kmwangi/mpesa-wrapped/internal/models"
)

// ParsePDF extracts per-page text from a statement PDF, falling back to
// OCR for image-only pages, and scans it for transaction lines. A rejected
// credential surfaces as ErrIncorrectPassword; zero recognized lines as a
// *NoTransactionsError.
func ParsePDF(data []byte, password string) ([]models.Transaction, error) {
	pages, err := extractor.ExtractPages(data, password)
	if err != nil {
		if errors.Is(err, extractor.ErrInvalidPassword) {
			return nil, ErrIncorrectPassword
		}
		return nil, err
	}
	return ParseStatementText(strings.Join(pages, "\n"))
}

// ParseStatement dispatches raw statement bytes to the right parser based
// on filename/MIME detection. password is only used for the PDF path.
func ParseStatement(filename, mimeType string, data []byte, password string) ([]models.Transaction, error) {
	kind, err := DetectKind(filename, mimeType)
	if err != nil {
		return nil, err
	}
	switch kind {
	case models.KindCSV:
		return ParseCSV(string(data))
	default:
		return ParsePDF(data, password)
	}
}
