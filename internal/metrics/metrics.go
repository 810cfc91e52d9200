// =============================================================================
// EventAlytics - Metrics Aggregator
// =============================================================================
//
// This module reduces an order collection into the dashboard summary
// statistics. Aggregation is a single pass, pure and deterministic, with no
// ordering dependency on the input: permuting the orders never changes the
// result. There is no incremental state; metrics are recomputed in full from
// the current collection whenever a new export replaces it.
//
// Orders whose total failed to parse (NaN sentinel) still count as orders
// but contribute nothing to revenue, so a single bad row can never poison
// the aggregate.
//
// =============================================================================

package metrics

import (
	"github.com/eventalytics/eventalytics/internal/orders"
)

// DashboardMetrics holds the summary statistics of one order collection.
type DashboardMetrics struct {
	// TotalRevenue is the sum of all parseable order totals.
	TotalRevenue float64 `json:"totalRevenue"`

	// TotalOrders is the number of orders, including those with an
	// unparseable total.
	TotalOrders int `json:"totalOrders"`

	// AverageOrderValue is TotalRevenue / TotalOrders, or 0 for an empty
	// collection.
	AverageOrderValue float64 `json:"averageOrderValue"`

	// TKCardHolders counts orders whose questionnaire carries the TK-card
	// ownership marker.
	TKCardHolders int `json:"tkCardHolders"`

	// TranslationRequests counts orders requesting live translation.
	TranslationRequests int `json:"translationRequests"`
}

// Calculate computes the dashboard metrics for an order collection.
func Calculate(ords []orders.Order) DashboardMetrics {
	var m DashboardMetrics

	for _, o := range ords {
		m.TotalOrders++
		if o.TotalKnown() {
			m.TotalRevenue += o.Total
		}
		if o.HasTKCard {
			m.TKCardHolders++
		}
		if o.NeedsTranslation {
			m.TranslationRequests++
		}
	}

	if m.TotalOrders > 0 {
		m.AverageOrderValue = m.TotalRevenue / float64(m.TotalOrders)
	}
	return m
}
