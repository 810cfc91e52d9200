// =============================================================================
// EventAlytics - Analysis Pipeline
// =============================================================================
//
// This module orchestrates the pipeline for a single export, from raw input
// to written reports:
//
//   1. Read the input (CSV text or XLSX workbook)
//   2. Parse it into header-keyed records
//   3. Map the records to orders (best-effort, recover on failure)
//   4. Publish the collection to the current-document store
//   5. Build the report (metrics + breakdowns)
//   6. Write the configured report formats
//   7. Archive the processed export
//
// Each export is independent and the analyzer carries no state between
// runs, so multiple files can be processed concurrently.
//
// Per-row problems never surface here; they are absorbed by the mapper's
// sentinels. A panic during mapping is recovered once, at this boundary,
// and converted into an empty collection so the caller still gets a report
// showing the "no data" state instead of a crash.
//
// =============================================================================

package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eventalytics/eventalytics/internal/config"
	"github.com/eventalytics/eventalytics/internal/csvparser"
	"github.com/eventalytics/eventalytics/internal/logger"
	"github.com/eventalytics/eventalytics/internal/orders"
	"github.com/eventalytics/eventalytics/internal/report"
	"github.com/eventalytics/eventalytics/internal/xlsxreader"
	"github.com/eventalytics/eventalytics/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of analyzing a single export.
type Result struct {
	// Source is the input that was analyzed.
	Source string

	// Report is the assembled report. Always set on success, also for
	// empty inputs (with zeroed metrics).
	Report *report.Report

	// OutputFiles lists the report files that were written.
	OutputFiles []string

	// Success indicates whether the analysis completed.
	Success bool

	// Error contains the failure if Success is false.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about one analysis run.
type Stats struct {
	// RowsParsed is the number of data rows in the export.
	RowsParsed int

	// OrdersMapped is the number of rows that became orders.
	OrdersMapped int

	// RowsDropped is the number of rows discarded for lacking an order
	// number (blank or malformed lines).
	RowsDropped int

	// ProcessingTime is the time taken by the full run.
	ProcessingTime time.Duration
}

// =============================================================================
// ANALYZER STRUCTURE
// =============================================================================

// Analyzer runs the pipeline for one export.
type Analyzer struct {
	source string
	path   string // file input; empty when text is set
	text   string // inline CSV input (bundled sample)

	cfg    *config.Config
	log    logger.Logger
	fm     *utils.FileManager
	store  *orders.Store
	ticket uint64

	dryRun  bool
	formats []string
}

// New creates an Analyzer for an export file (.csv or .xlsx).
func New(path string, cfg *config.Config, log logger.Logger) *Analyzer {
	return &Analyzer{
		source:  filepath.Base(path),
		path:    path,
		cfg:     cfg,
		log:     log,
		fm:      utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir),
		formats: cfg.Formats,
	}
}

// NewFromText creates an Analyzer for in-memory CSV text. Text inputs are
// never archived.
func NewFromText(name, text string, cfg *config.Config, log logger.Logger) *Analyzer {
	a := New(name, cfg, log)
	a.path = ""
	a.text = text
	return a
}

// SetDryRun disables report writing and archival; the pipeline still runs
// and the report is still built.
func (a *Analyzer) SetDryRun(dryRun bool) {
	a.dryRun = dryRun
}

// SetFormats overrides the configured report formats for this run.
func (a *Analyzer) SetFormats(formats []string) {
	if len(formats) > 0 {
		a.formats = formats
	}
}

// PublishTo registers the current-document store the mapped collection is
// committed to, with a ticket taken at input-arrival time so a slower run
// of an older input can never supersede a newer one.
func (a *Analyzer) PublishTo(store *orders.Store, ticket uint64) {
	a.store = store
	a.ticket = ticket
}

// =============================================================================
// MAIN PIPELINE
// =============================================================================

// Run executes the pipeline and never panics; all failure modes end up in
// the returned Result.
func (a *Analyzer) Run() Result {
	startTime := time.Now()
	result := Result{Source: a.source}

	a.log.Info("Analyzing %s", a.source)

	// Step 1+2: read and parse the input into records.
	doc, err := a.parseInput()
	if err != nil {
		result.Error = err
		return result
	}
	result.Stats.RowsParsed = doc.RowCount
	a.log.Debug("Parsed %d data rows (%d columns)", doc.RowCount, doc.ColumnCount)

	// Step 3: map records to orders. A panic inside mapping is recovered
	// and yields an empty collection.
	ords := a.mapOrders(doc)
	result.Stats.OrdersMapped = len(ords)
	result.Stats.RowsDropped = doc.RowCount - len(ords)
	a.log.Debug("Mapped %d orders (%d rows dropped)", len(ords), result.Stats.RowsDropped)

	// Step 4: publish to the current-document store, last write wins.
	if a.store != nil {
		if !a.store.Commit(a.ticket, ords) {
			a.log.Debug("A newer export superseded %s; result not published", a.source)
		}
	}

	// Step 5: assemble the report.
	rep := report.Build(a.source, ords, a.cfg)
	result.Report = rep

	// Step 6: write the configured formats.
	if !a.dryRun {
		files, err := a.writeReports(rep)
		if err != nil {
			result.Error = err
			return result
		}
		result.OutputFiles = files
	}

	// Step 7: archive the processed export.
	if !a.dryRun && a.path != "" {
		if archived, err := a.fm.ArchiveInputFile(a.path); err != nil {
			// Archival failure is not fatal; the report already exists.
			a.log.Warn("Failed to archive %s: %v", a.path, err)
		} else {
			a.log.Debug("Archived input to %s", archived)
		}
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	return result
}

// parseInput reads the input and parses it into records, dispatching on the
// file extension. Inline text is always CSV.
func (a *Analyzer) parseInput() (*csvparser.Document, error) {
	if a.path == "" {
		return csvparser.ParseDocument(a.text), nil
	}

	if strings.EqualFold(filepath.Ext(a.path), ".xlsx") {
		doc, err := xlsxreader.ReadWorkbook(a.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read workbook: %w", err)
		}
		return doc, nil
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}
	return csvparser.ParseDocument(string(data)), nil
}

// mapOrders maps the parsed records, converting a whole-document mapping
// failure into an empty collection.
func (a *Analyzer) mapOrders(doc *csvparser.Document) (ords []orders.Order) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("Mapping %s failed: %v; falling back to empty data", a.source, r)
			ords = nil
		}
	}()
	return orders.NewMapper(a.cfg).MapDocument(doc)
}

// writeReports writes one file per configured format. The "text" format
// renders to stdout instead of a file.
func (a *Analyzer) writeReports(rep *report.Report) ([]string, error) {
	var files []string

	for _, format := range a.formats {
		switch format {
		case "text":
			rep.RenderText(os.Stdout)

		case "json":
			path := filepath.Join(a.cfg.OutputDir,
				report.OutputFileName(a.cfg.ReportNameFormat, a.source, ".json"))
			if err := rep.WriteJSON(path); err != nil {
				return files, err
			}
			files = append(files, path)

		case "xlsx":
			path := filepath.Join(a.cfg.OutputDir,
				report.OutputFileName(a.cfg.ReportNameFormat, a.source, ".xlsx"))
			if err := rep.WriteXLSX(path); err != nil {
				return files, err
			}
			files = append(files, path)

		default:
			return files, fmt.Errorf("unknown report format %q", format)
		}
	}
	return files, nil
}
