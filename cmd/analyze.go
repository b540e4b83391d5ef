// =============================================================================
// Pohoda Analytics - Analyze Command
// =============================================================================
//
// This file defines the 'analyze' command, the main command of the tool. It
// orchestrates the whole reporting pipeline.
//
// COMMAND USAGE:
//   pohoda-analytics analyze [flags]
//
// PIPELINE:
//   1. Load configuration
//   2. Orders phase:
//      a. Discover XML files in the orders directory
//      b. Parse and extract each file (errors skip the file, not the run)
//      c. Build the monthly aggregate tables
//      d. Write the enabled exports (CSV, JS, XLSX, console)
//   3. Invoices phase:
//      a. Discover XML files in the invoices directory
//      b. Parse and extract each file
//      c. Split off Sponzoring invoices
//      d. Write the invoice JS data files
//
// A missing input directory skips its phase with a warning; the other phase
// still runs. A run fails only when an enabled export cannot be written.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vitarsport/pohoda-analytics/internal/aggregate"
	"github.com/vitarsport/pohoda-analytics/internal/config"
	"github.com/vitarsport/pohoda-analytics/internal/export"
	"github.com/vitarsport/pohoda-analytics/internal/extract"
	"github.com/vitarsport/pohoda-analytics/internal/logger"
	"github.com/vitarsport/pohoda-analytics/internal/types"
	"github.com/vitarsport/pohoda-analytics/pkg/utils"
)

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze Pohoda XML exports and generate sales reports",
	Long: `The analyze command reads order and invoice XML exports from the configured
directories and generates the sales reports: all_orders.csv, the monthly
summary CSVs, the dashboard JS data files, the monthly_summary.xlsx workbook
and the console summary tables.

Files are processed independently: a malformed or unreadable file is logged
and skipped, and the remaining files still contribute to the report. A
missing orders or invoices directory skips that phase entirely.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze()
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// =============================================================================
// MAIN ANALYSIS FUNCTION
// =============================================================================

// runAnalyze orchestrates the full reporting pipeline.
func runAnalyze() error {
	startTime := time.Now()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.New(level)

	log.Info().
		Str("orders_dir", cfg.OrdersDir).
		Str("invoices_dir", cfg.InvoicesDir).
		Str("output_dir", cfg.OutputDir).
		Msg("starting analysis")

	ordersProcessed, err := runOrdersPhase(log, cfg)
	if err != nil {
		return err
	}

	invoicesProcessed, err := runInvoicesPhase(log, cfg)
	if err != nil {
		return err
	}

	log.Info().
		Int("orders", ordersProcessed).
		Int("invoices", invoicesProcessed).
		Dur("elapsed", time.Since(startTime)).
		Msg("analysis complete")

	return nil
}

// =============================================================================
// ORDERS PHASE
// =============================================================================

// runOrdersPhase parses the order exports, builds the monthly report and
// writes the order-side outputs. Returns the number of order records.
func runOrdersPhase(log zerolog.Logger, cfg *config.Config) (int, error) {
	if !utils.DirExists(cfg.OrdersDir) {
		log.Warn().Str("dir", cfg.OrdersDir).Msg("orders directory missing, skipping orders phase")
		return 0, nil
	}

	records, items, err := parseAll(log, extract.OrderSchema, cfg.OrdersDir)
	if err != nil {
		return 0, err
	}
	log.Info().Int("records", len(records)).Int("items", len(items)).Msg("orders extracted")

	report := aggregate.Build(records)

	if cfg.CSVEnabled() {
		if err := export.WriteOrdersCSV(filepath.Join(cfg.OutputDir, "all_orders.csv"), records); err != nil {
			return 0, fmt.Errorf("orders CSV export: %w", err)
		}
		if err := export.WriteMonthlySummaries(cfg.OutputDir, report); err != nil {
			return 0, fmt.Errorf("summary CSV export: %w", err)
		}
		log.Debug().Msg("CSV exports written")
	}

	if cfg.JSEnabled() {
		if err := export.WriteOrdersJS(cfg.OutputDir, records, items); err != nil {
			return 0, fmt.Errorf("orders JS export: %w", err)
		}
		log.Debug().Msg("order JS data files written")
	}

	if cfg.XLSXEnabled() {
		if err := export.WriteWorkbook(filepath.Join(cfg.OutputDir, "monthly_summary.xlsx"), report); err != nil {
			return 0, fmt.Errorf("XLSX export: %w", err)
		}
		log.Debug().Msg("XLSX workbook written")
	}

	if cfg.ConsoleEnabled() {
		export.PrintReport(os.Stdout, report)
	}

	return len(records), nil
}

// =============================================================================
// INVOICES PHASE
// =============================================================================

// runInvoicesPhase parses the invoice exports, splits off the Sponzoring
// invoices and writes the invoice JS data files. Returns the number of
// invoice records including the sponsoring ones.
func runInvoicesPhase(log zerolog.Logger, cfg *config.Config) (int, error) {
	if !utils.DirExists(cfg.InvoicesDir) {
		log.Warn().Str("dir", cfg.InvoicesDir).Msg("invoices directory missing, skipping invoices phase")
		return 0, nil
	}

	records, items, err := parseAll(log, extract.InvoiceSchema, cfg.InvoicesDir)
	if err != nil {
		return 0, err
	}

	regular, sponsoring := types.SplitByPriceLevel(records, items, types.PriceLevelSponsoring)
	log.Info().
		Int("records", len(records)).
		Int("items", len(items)).
		Int("sponsoring", len(sponsoring.Records)).
		Msg("invoices extracted")

	if cfg.JSEnabled() {
		if err := export.WriteInvoicesJS(cfg.OutputDir, regular, sponsoring); err != nil {
			return 0, fmt.Errorf("invoices JS export: %w", err)
		}
		log.Debug().Msg("invoice JS data files written")
	}

	return len(records), nil
}

// =============================================================================
// FILE PROCESSING
// =============================================================================

// parseAll runs extraction over every XML file in dir. Failed files are
// logged and skipped; their documents simply do not appear in the output.
func parseAll(log zerolog.Logger, schema extract.Schema, dir string) ([]types.Record, []types.LineItem, error) {
	files, err := utils.ListXMLFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		log.Warn().Str("dir", dir).Msg("no XML files found")
	}

	var records []types.Record
	var items []types.LineItem
	for _, file := range files {
		result := extract.ParseFile(schema, file)
		if result.Err != nil {
			log.Error().Err(result.Err).Str("file", file).Msg("file skipped")
			continue
		}
		log.Debug().
			Str("file", file).
			Int("records", len(result.Records)).
			Int("skipped", result.Skipped).
			Msg("file processed")
		records = append(records, result.Records...)
		items = append(items, result.Items...)
	}
	return records, items, nil
}
