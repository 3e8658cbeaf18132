package parser

import (
	"path/filepath"
	"strings"

	"github.com/kmwangi/mpesa-wrapped/internal/models"
)

// DetectKind identifies the statement encoding from the filename extension
// and an optional MIME type. This is the gate in front of the core: inputs
// that are neither tabular nor document statements never reach a parser.
func DetectKind(filename, mimeType string) (models.StatementKind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	mime := strings.ToLower(strings.TrimSpace(mimeType))

	switch {
	case ext == ".csv" || mime == "text/csv":
		return models.KindCSV, nil
	case ext == ".pdf" || mime == "application/pdf":
		return models.KindPDF, nil
	default:
		return "", ErrUnsupportedFile
	}
}
