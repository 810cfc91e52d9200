package orders

import (
	"math"
	"testing"
	"time"

	"github.com/eventalytics/eventalytics/internal/config"
	"github.com/eventalytics/eventalytics/internal/csvparser"
)

const sampleCSV = "Número de pedido,Estado del pedido,Fecha del pedido,Nota del cliente,Nombre,Apellidos,Ciudad,Correo electrónico,Teléfono,Método de pago,Subtotal,Cantidad,Importe total,Otros campos de formulario\n" +
	`1001,Completado,2024-03-15 18:30,,"Ana","García López","Pozuelo De Alarcon",ana@example.com,600111222,Tarjeta de crédito,25.50,1,25.50,"Tengo tarjeta TK: Si | ¿Consientes?: Si, Por email y WhatsApp"` + "\n" +
	`1002,Completado,2024-03-16 10:05,,Luis,Martín,Madrid,luis@example.com,600333444,Apple Pay (Stripe),14.00,1,14.00,"¿Necesitas Traducción? (Evento En Inglés): Si | ¿Consientes?: No, Gracias"` + "\n" +
	",,,,,,,,,,,,,\n"

func newTestMapper() *Mapper {
	return NewMapper(config.Default())
}

func TestMapDocument_EndToEnd(t *testing.T) {
	doc := csvparser.ParseDocument(sampleCSV)
	orders := newTestMapper().MapDocument(doc)

	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	a := orders[0]
	if a.ID != "1001" || a.Status != "Completado" {
		t.Fatalf("unexpected order A: %+v", a)
	}
	if a.CustomerName != "Ana García López" {
		t.Fatalf("customer name: %q", a.CustomerName)
	}
	if a.City != "Pozuelo de Alarcón" {
		t.Fatalf("city not normalized: %q", a.City)
	}
	if a.Total != 25.50 {
		t.Fatalf("total: %v", a.Total)
	}
	if !a.HasTKCard || a.NeedsTranslation {
		t.Fatalf("questionnaire booleans: %+v", a)
	}
	if a.MarketingConsent != "Email y WhatsApp" {
		t.Fatalf("consent: %q", a.MarketingConsent)
	}
	want := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	if !a.Date.Equal(want) {
		t.Fatalf("date: %v", a.Date)
	}

	b := orders[1]
	if b.HasTKCard || !b.NeedsTranslation {
		t.Fatalf("questionnaire booleans: %+v", b)
	}
	if b.MarketingConsent != "No Consiente" {
		t.Fatalf("consent: %q", b.MarketingConsent)
	}
}

func TestMapDocument_EmptyIDDropped(t *testing.T) {
	doc := csvparser.ParseDocument("Número de pedido,Ciudad\n1001,Madrid\n,Getafe\n\n")
	orders := newTestMapper().MapDocument(doc)
	if len(orders) != 1 || orders[0].ID != "1001" {
		t.Fatalf("rows without an id must be dropped, got %+v", orders)
	}
}

func TestMapRecord_ShortRowTolerated(t *testing.T) {
	doc := csvparser.ParseDocument("Número de pedido,Nombre,Apellidos,Importe total\n1003,Eva")
	orders := newTestMapper().MapDocument(doc)

	if len(orders) != 1 {
		t.Fatalf("short row should still map, got %d orders", len(orders))
	}
	o := orders[0]
	if o.CustomerName != "Eva" {
		t.Fatalf("customer name: %q", o.CustomerName)
	}
	if o.TotalKnown() {
		t.Fatalf("missing total should be NaN, got %v", o.Total)
	}
}

func TestMapRecord_InvalidDateSentinel(t *testing.T) {
	m := newTestMapper()
	o := m.MapRecord(map[string]string{
		"Número de pedido":  "1004",
		"Fecha del pedido":  "no es una fecha",
		"Importe total":     "abc",
		"Otros campos de formulario": "",
	})
	if o.DateKnown() {
		t.Fatalf("invalid date should map to the zero time, got %v", o.Date)
	}
	if !math.IsNaN(o.Total) {
		t.Fatalf("invalid total should map to NaN, got %v", o.Total)
	}
	if o.MarketingConsent != "No especificado" {
		t.Fatalf("consent default: %q", o.MarketingConsent)
	}
}

func TestParseDateLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-15":       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		"15/03/2024":       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		"2024-03-15 18:30": time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC),
		"March 15, 2024":   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		if got := parseDate(in); !got.Equal(want) {
			t.Fatalf("parseDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if got := parseAmount("25.50"); got != 25.5 {
		t.Fatalf("got %v", got)
	}
	if got := parseAmount("14.00 €"); got != 14 {
		t.Fatalf("currency suffix should be tolerated, got %v", got)
	}
	if got := parseAmount("-3.25"); got != -3.25 {
		t.Fatalf("got %v", got)
	}
	if got := parseAmount("gratis"); !math.IsNaN(got) {
		t.Fatalf("non-numeric input should be NaN, got %v", got)
	}
	if got := parseAmount(""); !math.IsNaN(got) {
		t.Fatalf("empty input should be NaN, got %v", got)
	}
}
