package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// 216 dpi renders pages at 3x the 72 dpi PDF base, which recognition
// needs for small table text.
const ocrDPI = "216"

// toolPaths caches the poppler/tesseract lookups. Resolved once per
// process, before any page is recognized.
var (
	toolsOnce     sync.Once
	pdftoppmPath  string
	tesseractPath string
	toolsErr      error
)

func resolveTools() error {
	toolsOnce.Do(func() {
		if pdftoppmPath, toolsErr = exec.LookPath("pdftoppm"); toolsErr != nil {
			toolsErr = fmt.Errorf("pdftoppm not available (install poppler-utils): %w", toolsErr)
			return
		}
		if tesseractPath, toolsErr = exec.LookPath("tesseract"); toolsErr != nil {
			toolsErr = fmt.Errorf("tesseract not available (install tesseract-ocr): %w", toolsErr)
		}
	})
	return toolsErr
}

// IsOCRAvailable reports whether the rendering and recognition tools are
// installed.
func IsOCRAvailable() bool {
	return resolveTools() == nil
}

// ocrSession holds the on-disk state for recognizing pages of a single
// statement. Close removes everything; it must run exactly once per
// session, on success and failure alike.
type ocrSession struct {
	dir      string
	pdfPath  string
	password string
}

func newOCRSession(data []byte, password string) (*ocrSession, error) {
	if err := resolveTools(); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "statement-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("create OCR temp dir: %w", err)
	}

	pdfPath := filepath.Join(dir, "statement.pdf")
	if err := os.WriteFile(pdfPath, data, 0600); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("write statement copy: %w", err)
	}

	return &ocrSession{dir: dir, pdfPath: pdfPath, password: strings.TrimSpace(password)}, nil
}

// RecognizePage renders one page to PNG and runs Tesseract over it,
// configured for a uniform block of table text with interword spacing
// preserved.
func (s *ocrSession) RecognizePage(page int) (string, error) {
	pageStr := strconv.Itoa(page)
	prefix := filepath.Join(s.dir, "page-"+pageStr)

	args := []string{"-f", pageStr, "-l", pageStr, "-r", ocrDPI, "-png"}
	if s.password != "" {
		args = append(args, "-upw", s.password)
	}
	args = append(args, s.pdfPath, prefix)

	if out, err := exec.Command(pdftoppmPath, args...).CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed for page %d: %v (output: %s)", page, err, string(out))
	}

	images, err := filepath.Glob(prefix + "*.png")
	if err != nil || len(images) == 0 {
		return "", fmt.Errorf("pdftoppm produced no image for page %d", page)
	}
	sort.Strings(images)
	img := images[0]

	outBase := strings.TrimSuffix(img, ".png") + "-ocr"
	cmd := exec.Command(tesseractPath, img, outBase,
		"-l", "eng", "--psm", "6", "-c", "preserve_interword_spaces=1")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("tesseract failed for page %d: %v (output: %s)", page, err, string(out))
	}

	text, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		return "", fmt.Errorf("read OCR output for page %d: %w", page, err)
	}

	// page images are not needed again once recognized
	os.Remove(img)
	os.Remove(outBase + ".txt")

	return strings.TrimSpace(string(text)), nil
}

// Close releases the session's on-disk resources.
func (s *ocrSession) Close() {
	os.RemoveAll(s.dir)
}
