// =============================================================================
// EventAlytics - Presentation Breakdowns
// =============================================================================
//
// The breakdowns feed the dashboard charts: orders per city (top-N), per
// simplified payment method, per calendar day, and the translation split.
// Like the summary metrics they are recomputed in full on every new export.
//
// =============================================================================

package metrics

import (
	"sort"
	"strings"

	"github.com/eventalytics/eventalytics/internal/config"
	"github.com/eventalytics/eventalytics/internal/orders"
)

// Count is one labeled bucket of a breakdown.
type Count struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CityCounts returns order counts per normalized city, descending, capped
// at topN. Ties are broken alphabetically so the result is deterministic.
func CityCounts(ords []orders.Order, topN int) []Count {
	counts := tally(ords, func(o orders.Order) (string, bool) {
		return o.City, true
	})

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Value != counts[j].Value {
			return counts[i].Value > counts[j].Value
		}
		return counts[i].Name < counts[j].Name
	})

	if topN >= 0 && len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}

// PaymentMethodCounts returns order counts per payment method, with labels
// simplified through the configured display rules. The first matching rule
// rewrites the label; unmatched labels pass through. Buckets keep the order
// in which each label first appears.
func PaymentMethodCounts(ords []orders.Order, rules []config.PaymentRule) []Count {
	return tally(ords, func(o orders.Order) (string, bool) {
		return simplifyPayment(o.PaymentMethod, rules), true
	})
}

// simplifyPayment collapses a raw payment label to its display label.
func simplifyPayment(method string, rules []config.PaymentRule) string {
	for _, rule := range rules {
		if rule.Contains != "" && strings.Contains(method, rule.Contains) {
			return rule.Label
		}
		for _, exact := range rule.Equals {
			if method == exact {
				return rule.Label
			}
		}
	}
	return method
}

// DailyCounts groups orders by calendar day using the display key DD/MM.
// Orders with an unknown date are skipped. Buckets are collected in order
// of first appearance and then reversed, mirroring the dashboard's
// reverse-chronological-looking timeline.
func DailyCounts(ords []orders.Order) []Count {
	counts := tally(ords, func(o orders.Order) (string, bool) {
		if !o.DateKnown() {
			return "", false
		}
		return o.Date.Format("02/01"), true
	})

	for i, j := 0, len(counts)-1; i < j; i, j = i+1, j-1 {
		counts[i], counts[j] = counts[j], counts[i]
	}
	return counts
}

// TranslationSplit returns the two-way split of translation-required
// orders versus the rest.
func TranslationSplit(m DashboardMetrics) []Count {
	return []Count{
		{Name: "Requiere Traducción", Value: m.TranslationRequests},
		{Name: "No Requiere", Value: m.TotalOrders - m.TranslationRequests},
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// tally counts orders per key, keeping buckets in order of first appearance.
// The key function may reject an order by returning false.
func tally(ords []orders.Order, key func(orders.Order) (string, bool)) []Count {
	index := make(map[string]int)
	var counts []Count

	for _, o := range ords {
		k, ok := key(o)
		if !ok {
			continue
		}
		if i, seen := index[k]; seen {
			counts[i].Value++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, Count{Name: k, Value: 1})
	}
	return counts
}
