// =============================================================================
// EventAlytics - Report Assembly
// =============================================================================
//
// A Report is the complete data handed to the presentation side: the order
// collection, the dashboard summary metrics, and the chart breakdowns. The
// writers in render.go turn it into terminal text, JSON or a workbook.
//
// =============================================================================

package report

import (
	"time"

	"github.com/eventalytics/eventalytics/internal/config"
	"github.com/eventalytics/eventalytics/internal/currency"
	"github.com/eventalytics/eventalytics/internal/metrics"
	"github.com/eventalytics/eventalytics/internal/orders"
)

// Report bundles everything one rendered dashboard needs.
type Report struct {
	// Source names the export the report was built from.
	Source string `json:"source"`

	// GeneratedAt is the report creation time.
	GeneratedAt time.Time `json:"generatedAt"`

	// Metrics is the dashboard summary.
	Metrics metrics.DashboardMetrics `json:"metrics"`

	// Cities is the top-N city breakdown.
	Cities []metrics.Count `json:"cities"`

	// PaymentMethods is the simplified payment-method breakdown.
	PaymentMethods []metrics.Count `json:"paymentMethods"`

	// Daily is the per-day order count timeline.
	Daily []metrics.Count `json:"daily"`

	// Translation is the translation-required split.
	Translation []metrics.Count `json:"translation"`

	// Orders is the tabular view, one row per order, with sentinel values
	// already made serialization-safe.
	Orders []Row `json:"orders"`
}

// Row is the serializable view of one order. The NaN total sentinel becomes
// a nil pointer and the zero-date sentinel an empty string, so the JSON
// writer never chokes on them.
type Row struct {
	ID               string   `json:"id"`
	Status           string   `json:"status"`
	Date             string   `json:"date"`
	CustomerName     string   `json:"customerName"`
	City             string   `json:"city"`
	Email            string   `json:"email"`
	PaymentMethod    string   `json:"paymentMethod"`
	Total            *float64 `json:"total"`
	TotalDisplay     string   `json:"totalDisplay"`
	HasTKCard        bool     `json:"hasTKCard"`
	NeedsTranslation bool     `json:"needsTranslation"`
	MarketingConsent string   `json:"marketingConsent"`
}

// Build assembles a report from an order collection.
func Build(source string, ords []orders.Order, cfg *config.Config) *Report {
	m := metrics.Calculate(ords)

	rows := make([]Row, len(ords))
	for i, o := range ords {
		rows[i] = newRow(o)
	}

	return &Report{
		Source:         source,
		GeneratedAt:    time.Now(),
		Metrics:        m,
		Cities:         metrics.CityCounts(ords, cfg.TopCities),
		PaymentMethods: metrics.PaymentMethodCounts(ords, cfg.Payments),
		Daily:          metrics.DailyCounts(ords),
		Translation:    metrics.TranslationSplit(m),
		Orders:         rows,
	}
}

func newRow(o orders.Order) Row {
	row := Row{
		ID:               o.ID,
		Status:           o.Status,
		Date:             currency.FormatDate(o.Date),
		CustomerName:     o.CustomerName,
		City:             o.City,
		Email:            o.Email,
		PaymentMethod:    o.PaymentMethod,
		TotalDisplay:     currency.FormatEUR(o.Total),
		HasTKCard:        o.HasTKCard,
		NeedsTranslation: o.NeedsTranslation,
		MarketingConsent: o.MarketingConsent,
	}
	if o.TotalKnown() {
		total := o.Total
		row.Total = &total
	}
	return row
}
