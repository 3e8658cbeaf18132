// Package extractor turns statement PDF bytes into per-page text. It
// prefers the embedded text layer and falls back to rendering and OCR for
// pages that are image-only.
package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrInvalidPassword reports that an encrypted statement rejected the
// supplied credential. Callers must distinguish this from other extraction
// failures to re-prompt instead of giving up.
var ErrInvalidPassword = pdf.ErrInvalidPassword

// Pages with less embedded text than this are treated as image-only and
// sent through OCR.
const minEmbeddedTextLen = 50

// ExtractPages opens a statement PDF (decrypting with password when set)
// and returns the text of each page, in page order. A page whose embedded
// text layer is empty or implausibly short is rendered and recognized
// instead. OCR resources are released exactly once, on all paths.
func ExtractPages(data []byte, password string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	r, err := openReader(data, password)
	if err != nil {
		return nil, err
	}

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("statement PDF has no pages")
	}

	var session *ocrSession
	defer func() {
		if session != nil {
			session.Close()
		}
	}()

	for i := 1; i <= numPages; i++ {
		text := pageText(r.Page(i))

		if len(strings.TrimSpace(text)) < minEmbeddedTextLen {
			if session == nil {
				session, err = newOCRSession(data, password)
				if err != nil {
					// OCR tools missing; keep whatever the text layer had
					pages = append(pages, text)
					err = nil
					continue
				}
			}
			recognized, ocrErr := session.RecognizePage(i)
			if ocrErr == nil {
				text = recognized
			}
		}

		pages = append(pages, text)
	}

	return pages, nil
}

// openReader opens the document, trying the supplied credential once.
func openReader(data []byte, password string) (*pdf.Reader, error) {
	password = strings.TrimSpace(password)
	tried := false
	r, err := pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), func() string {
		if tried {
			return ""
		}
		tried = true
		return password
	})
	if err != nil {
		if err == pdf.ErrInvalidPassword {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("open statement PDF: %w", err)
	}
	return r, nil
}

// pageText extracts the embedded text layer of one page. GetTextByRow keeps
// table rows on single lines, which the transaction-line pattern depends
// on; plain text extraction is the fallback.
func pageText(page pdf.Page) string {
	if page.V.IsNull() {
		return ""
	}

	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		return strings.Join(lines, "\n")
	}

	fontNames := page.Fonts()
	fonts := make(map[string]*pdf.Font, len(fontNames))
	for _, name := range fontNames {
		f := page.Font(name)
		fonts[name] = &f
	}
	text, err := page.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
