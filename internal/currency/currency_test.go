package currency

import (
	"math"
	"testing"
	"time"
)

func TestFormatEUR(t *testing.T) {
	cases := map[float64]string{
		39.5:     "39,50 €",
		19.75:    "19,75 €",
		0:        "0,00 €",
		12345.67: "12.345,67 €",
	}
	for amount, want := range cases {
		if got := FormatEUR(amount); got != want {
			t.Fatalf("FormatEUR(%v) = %q, want %q", amount, got, want)
		}
	}
}

func TestFormatEUR_NaN(t *testing.T) {
	if got := FormatEUR(math.NaN()); got != "—" {
		t.Fatalf("NaN must render as a dash, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "15/03/2024" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("zero time must render empty, got %q", got)
	}
}
