package orders

import (
	"testing"

	"github.com/eventalytics/eventalytics/internal/config"
)

func TestNormalize_CanonicalSpelling(t *testing.T) {
	n := NewCityNormalizer(config.Default().Cities)

	cases := map[string]string{
		"pozuelo de alarcon":   "Pozuelo de Alarcón",
		"POZUELO DE ALARCÓN":   "Pozuelo de Alarcón",
		`"Pozuelo De Alarcon"`: "Pozuelo de Alarcón",
		" las rozas ":          "Las Rozas",
		"Madrid":               "Madrid",
		"madrid centro":        "Madrid",
		"Getafe":               "Getafe",
	}
	for in, want := range cases {
		if got := n.Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_FirstMatchWins(t *testing.T) {
	n := NewCityNormalizer([]config.CityRule{
		{Match: "alarcon", Canonical: "Pozuelo de Alarcón"},
		{Match: "pozuelo", Canonical: "Pozuelo"},
	})
	if got := n.Normalize("Pozuelo de Alarcon"); got != "Pozuelo de Alarcón" {
		t.Fatalf("rule order must decide overlapping matches, got %q", got)
	}
}

func TestNormalize_StripsQuotesAndTrims(t *testing.T) {
	n := NewCityNormalizer(nil)
	if got := n.Normalize(`  'Alcobendas'  `); got != "Alcobendas" {
		t.Fatalf("got %q", got)
	}
}
