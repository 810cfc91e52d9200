package orders

import (
	"testing"

	"github.com/eventalytics/eventalytics/internal/config"
)

func newTestDecoder() *Decoder {
	return NewDecoder(config.Default().Extraction)
}

func TestDecode_ConsentFirstMatchWins(t *testing.T) {
	// The blob contains both the combined and the plain email phrasing; the
	// combined pattern is ordered first, so it must win.
	blob := "¿Consientes?: Si, Por email y WhatsApp | nota: Si, Por email"
	got := newTestDecoder().Decode(blob)
	if got.MarketingConsent != "Email y WhatsApp" {
		t.Fatalf("consent = %q, want Email y WhatsApp", got.MarketingConsent)
	}
}

func TestDecode_ConsentVariants(t *testing.T) {
	cases := map[string]string{
		"¿Consientes?: Si, Por email":    "Solo Email",
		"¿Consientes?: Si, Por WhatsApp": "Solo WhatsApp",
		"¿Consientes?: No, Gracias":      "No Consiente",
		"sin respuesta":                  "No especificado",
		"":                               "No especificado",
	}
	d := newTestDecoder()
	for blob, want := range cases {
		if got := d.Decode(blob); got.MarketingConsent != want {
			t.Fatalf("Decode(%q).MarketingConsent = %q, want %q", blob, got.MarketingConsent, want)
		}
	}
}

func TestDecode_IndependentBooleans(t *testing.T) {
	d := newTestDecoder()

	got := d.Decode("Tengo tarjeta TK: Si | ¿Necesitas Traducción? (Evento En Inglés): Si")
	if !got.HasTKCard || !got.NeedsTranslation {
		t.Fatalf("both markers present, got %+v", got)
	}

	got = d.Decode("Tengo tarjeta TK: Si")
	if !got.HasTKCard || got.NeedsTranslation {
		t.Fatalf("only TK marker present, got %+v", got)
	}

	// A "No" answer to the translation question must not match the marker,
	// which pins the trailing ": Si".
	got = d.Decode("¿Necesitas Traducción? (Evento En Inglés): No")
	if got.NeedsTranslation {
		t.Fatalf("translation answer No must not count as a request")
	}
}

func TestDecode_MarkerDoesNotSpanSegments(t *testing.T) {
	// The marker split across two answers must not match.
	got := newTestDecoder().Decode("Tengo tarjeta | TK")
	if got.HasTKCard {
		t.Fatalf("marker must match within a single segment")
	}
}
