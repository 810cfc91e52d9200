// =============================================================================
// EventAlytics - Record Mapper
// =============================================================================
//
// The mapper turns the header-keyed records of a parsed export into Orders.
// It is a pure function of its input: every per-row problem is absorbed
// locally with a sentinel value (zero time, NaN) and never raised. Rows
// whose order number is empty are dropped; this guards against trailing
// blank lines and malformed rows in one place.
//
// =============================================================================

package orders

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/eventalytics/eventalytics/internal/config"
	"github.com/eventalytics/eventalytics/internal/csvparser"
)

// Mapper maps raw export records to Orders.
type Mapper struct {
	cols    config.Columns
	decoder *Decoder
	cities  *CityNormalizer
}

// NewMapper creates a Mapper wired with the configured column labels,
// questionnaire rules and city table.
func NewMapper(cfg *config.Config) *Mapper {
	return &Mapper{
		cols:    cfg.Columns,
		decoder: NewDecoder(cfg.Extraction),
		cities:  NewCityNormalizer(cfg.Cities),
	}
}

// MapDocument maps every record of a parsed document, preserving row order.
// Rows with an empty order number are excluded.
func (m *Mapper) MapDocument(doc *csvparser.Document) []Order {
	orders := make([]Order, 0, len(doc.Rows))
	for _, rec := range doc.Rows {
		order := m.MapRecord(rec)
		if order.ID == "" {
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// MapRecord builds one Order from a raw record. Missing keys read as empty
// strings, so a record from a short row maps without failing.
func (m *Mapper) MapRecord(rec map[string]string) Order {
	answers := m.decoder.Decode(rec[m.cols.OtherFields])

	return Order{
		ID:               rec[m.cols.OrderNumber],
		Status:           rec[m.cols.OrderStatus],
		Date:             parseDate(rec[m.cols.OrderDate]),
		CustomerName:     joinName(rec[m.cols.FirstName], rec[m.cols.LastName]),
		City:             m.cities.Normalize(rec[m.cols.City]),
		Email:            rec[m.cols.Email],
		PaymentMethod:    rec[m.cols.PaymentMethod],
		Total:            parseAmount(rec[m.cols.TotalAmount]),
		HasTKCard:        answers.HasTKCard,
		NeedsTranslation: answers.NeedsTranslation,
		MarketingConsent: answers.MarketingConsent,
	}
}

// joinName joins first and last name with a single space, stripping quote
// characters left over from the export.
func joinName(first, last string) string {
	name := strings.NewReplacer(`"`, "", `'`, "").Replace(first + " " + last)
	return strings.TrimSpace(name)
}

// =============================================================================
// FIELD PARSING
// =============================================================================

// dateLayouts are the accepted order-date formats, most specific first.
// The first layout that parses wins.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
	"January 2, 2006",
}

// parseDate parses an order date. Unparseable input yields the zero time.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseAmount parses a money amount with '.' as the decimal separator.
// Stray currency symbols and trailing text are tolerated by falling back to
// the longest leading numeric prefix. Non-numeric input yields NaN.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		if (c == '+' || c == '-') && end == 0 {
			end++
			continue
		}
		break
	}
	if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
		return v
	}
	return math.NaN()
}
