// =============================================================================
// EventAlytics - Currency & Date Display Formatting
// =============================================================================
//
// Amounts are rendered with the fixed es-ES convention used by the event
// organizers: comma decimal separator, dot thousands grouping, two decimal
// places and a trailing euro sign ("12.345,67 €"). This is purely a display
// concern; the data model keeps raw float64 amounts.
//
// =============================================================================

package currency

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders numbers with Spanish (Spain) locale conventions.
var printer = message.NewPrinter(language.MustParse("es-ES"))

// FormatEUR renders an amount as a two-decimal euro string in the es-ES
// locale. The NaN sentinel of an unparseable amount renders as a dash so
// flagged rows stay visible without pretending to carry a value.
func FormatEUR(amount float64) string {
	if math.IsNaN(amount) {
		return "—"
	}
	return printer.Sprintf("%v €", number.Decimal(amount, number.Scale(2)))
}

// FormatDate renders an order date as DD/MM/YYYY. The zero-time sentinel of
// an unparseable date renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
