// =============================================================================
// EventAlytics - Order Domain Model
// =============================================================================
//
// This package turns the raw header-keyed records of an export into typed
// orders. It owns:
//   - The Order entity and its sentinel conventions.
//   - The record mapper (mapper.go).
//   - The questionnaire blob decoder (questionnaire.go).
//   - The city normalizer (cities.go).
//   - The current-document store (store.go).
//
// =============================================================================

package orders

import (
	"math"
	"time"
)

// Order is the canonical domain entity, created once per valid export row
// and immutable thereafter.
type Order struct {
	// ID is the order number. Rows without an ID never become orders.
	ID string

	// Status is the order status as exported.
	Status string

	// Date is the order date. The zero time marks an unparseable date.
	Date time.Time

	// CustomerName is first and last name joined with a single space,
	// with quote characters stripped.
	CustomerName string

	// City is the normalized city name.
	City string

	Email         string
	PaymentMethod string

	// Total is the order amount. NaN marks an unparseable amount; such
	// orders are still listed but excluded from revenue sums.
	Total float64

	// HasTKCard reports whether the questionnaire blob contains the
	// TK-card ownership marker.
	HasTKCard bool

	// NeedsTranslation reports whether the attendee requested live
	// translation.
	NeedsTranslation bool

	// MarketingConsent is one of the configured consent labels.
	MarketingConsent string
}

// TotalKnown reports whether the order amount parsed successfully.
func (o Order) TotalKnown() bool {
	return !math.IsNaN(o.Total)
}

// DateKnown reports whether the order date parsed successfully.
func (o Order) DateKnown() bool {
	return !o.Date.IsZero()
}
