// Package api exposes the statement-to-summary pipeline over HTTP for the
// slideshow frontend.
package api

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/kmwangi/mpesa-wrapped/internal/mockdata"
	"github.com/kmwangi/mpesa-wrapped/internal/models"
	"github.com/kmwangi/mpesa-wrapped/internal/parser"
	"github.com/kmwangi/mpesa-wrapped/internal/summary"
)

// Error codes the frontend switches on.
const (
	CodeIncorrectPassword = "incorrect_password"
	CodeNoTransactions    = "no_transactions"
	CodeUnsupportedFile   = "unsupported_file"
	CodeParseFailed       = "parse_failed"
)

// SummaryResponse is the JSON envelope for the summary endpoints.
type SummaryResponse struct {
	Success bool                     `json:"success"`
	Error   string                   `json:"error,omitempty"`
	Code    string                   `json:"code,omitempty"`
	Summary *models.FinancialSummary `json:"summary,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Log zerolog.Logger
}

// Register sets up the API routes on the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Get("/api/demo", h.HandleDemo)
	app.Post("/api/summary", h.HandleSummary)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "engine": "fiber"})
}

// HandleDemo returns a synthetic summary without touching a statement.
func (h *Handler) HandleDemo(c *fiber.Ctx) error {
	s := mockdata.Generate()
	return c.JSON(SummaryResponse{Success: true, Summary: &s})
}

// HandleSummary accepts a multipart statement upload (form fields "file"
// and optional "password") and returns the derived summary.
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, CodeParseFailed, "No file uploaded. Use form field 'file'.")
	}

	// gate before the core: only the two statement encodings get through
	if _, err := parser.DetectKind(fileHeader.Filename, fileHeader.Header.Get("Content-Type")); err != nil {
		return writeError(c, fiber.StatusBadRequest, CodeUnsupportedFile, "Only .csv and .pdf statements are supported.")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, CodeParseFailed, "Failed to read uploaded file.")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, CodeParseFailed, "Failed to read uploaded file.")
	}

	password := c.FormValue("password")

	transactions, err := parser.ParseStatement(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data, password)
	if err != nil {
		return h.writeParseError(c, fileHeader.Filename, err)
	}

	s := summary.Build(transactions)
	h.Log.Info().Str("file", fileHeader.Filename).Int("transactions", s.TotalTransactions).Msg("statement summarized")
	return c.JSON(SummaryResponse{Success: true, Summary: &s})
}

// writeParseError maps the parser error taxonomy onto HTTP responses. The
// no-transactions text sample goes to the log only, never to the client.
func (h *Handler) writeParseError(c *fiber.Ctx, filename string, err error) error {
	var noTxn *parser.NoTransactionsError
	switch {
	case errors.Is(err, parser.ErrIncorrectPassword):
		return writeError(c, fiber.StatusUnauthorized, CodeIncorrectPassword,
			"Incorrect password. Try again with your National ID number or the 6-digit SMS code.")
	case errors.As(err, &noTxn):
		h.Log.Warn().Str("file", filename).Str("sample", noTxn.Sample).Msg("no transactions recognized")
		return writeError(c, fiber.StatusUnprocessableEntity, CodeNoTransactions,
			"No transactions found. The statement may not contain readable text or the format is unsupported. Try exporting as CSV from the M-PESA app.")
	default:
		h.Log.Error().Str("file", filename).Err(err).Msg("statement parse failed")
		return writeError(c, fiber.StatusUnprocessableEntity, CodeParseFailed, "Failed to parse the statement.")
	}
}

func writeError(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(SummaryResponse{Success: false, Code: code, Error: msg})
}
