package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kmwangi/mpesa-wrapped/internal/api"
	"github.com/kmwangi/mpesa-wrapped/internal/config"
	"github.com/kmwangi/mpesa-wrapped/internal/logger"
	"github.com/kmwangi/mpesa-wrapped/internal/mockdata"
	"github.com/kmwangi/mpesa-wrapped/internal/models"
	"github.com/kmwangi/mpesa-wrapped/internal/parser"
	"github.com/kmwangi/mpesa-wrapped/internal/summary"
	"github.com/kmwangi/mpesa-wrapped/internal/writer"
)

const version = "1.0.0"

func main() {
	passwordFlag := flag.String("password", "", "Password for protected PDF statements (national ID or 6-digit SMS code)")
	outputFlag := flag.String("output", "", "Output summary JSON path (defaults to stdout)")
	txnFlag := flag.Bool("transactions", false, "Include the full transaction list in the summary JSON")
	csvFlag := flag.String("csv", "", "Also write the normalized transactions to the given CSV path")
	demoFlag := flag.Bool("demo", false, "Generate a summary from synthetic demo data instead of a statement")
	serveFlag := flag.String("serve", "", "Run the HTTP API on the given address instead of converting files")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `M-PESA Wrapped — statement to financial summary

Parses an M-PESA statement export (.csv) or statement PDF (.pdf, OCR
fallback for scanned pages) and derives the yearly financial summary.

Usage:
  mpesa-wrapped [flags] <statement.csv|statement.pdf>

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Summarize a CSV export
  mpesa-wrapped statement.csv

  # Summarize a protected PDF statement
  mpesa-wrapped -password 12345678 statement.pdf

  # Demo data, written to a file
  mpesa-wrapped -demo -output summary.json

  # Summary JSON plus a normalized transactions CSV
  mpesa-wrapped -output summary.json -csv transactions.csv statement.pdf

  # Serve the HTTP API for the slideshow frontend
  mpesa-wrapped -serve :8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("mpesa-wrapped v%s\n", version)
		os.Exit(0)
	}

	log := logger.New()

	if *serveFlag != "" {
		cfg := config.Load()
		cfg.ListenAddr = *serveFlag
		app := fiber.New(fiber.Config{BodyLimit: 32 << 20})
		h := &api.Handler{Log: log}
		h.Register(app)
		if cfg.StaticDir != "" {
			app.Static("/", cfg.StaticDir)
		}
		log.Info().Str("addr", cfg.ListenAddr).Msg("serving statement API")
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	var s models.FinancialSummary
	switch {
	case *demoFlag:
		s = mockdata.Generate()
	case flag.NArg() == 1:
		var err error
		s, err = summarizeFile(flag.Arg(0), *passwordFlag)
		if err != nil {
			fatalf("Error processing %s: %v\n", flag.Arg(0), err)
		}
	default:
		flag.Usage()
		os.Exit(0)
	}

	if *csvFlag != "" {
		if err := writer.WriteTransactionsCSVFile(*csvFlag, s.Transactions); err != nil {
			fatalf("Error writing transactions CSV: %v\n", err)
		}
		fmt.Printf("Transactions written to %s\n", *csvFlag)
	}

	w := &writer.SummaryWriter{IncludeTransactions: *txnFlag}
	if *outputFlag != "" {
		if err := w.WriteToFile(*outputFlag, s); err != nil {
			fatalf("Error writing summary: %v\n", err)
		}
		fmt.Printf("Summary written to %s (%d transactions)\n", *outputFlag, s.TotalTransactions)
		return
	}
	if err := w.Write(os.Stdout, s); err != nil {
		fatalf("Error writing summary: %v\n", err)
	}
}

func summarizeFile(path, password string) (models.FinancialSummary, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return models.FinancialSummary{}, fmt.Errorf("input file not found: %s", path)
	}

	if _, err := parser.DetectKind(path, ""); err != nil {
		return models.FinancialSummary{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.FinancialSummary{}, fmt.Errorf("read statement: %w", err)
	}

	transactions, err := parser.ParseStatement(path, "", data, strings.TrimSpace(password))
	if err != nil {
		return models.FinancialSummary{}, err
	}

	return summary.Build(transactions), nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
