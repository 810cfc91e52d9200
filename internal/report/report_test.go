package report

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/eventalytics/eventalytics/internal/config"
	"github.com/eventalytics/eventalytics/internal/orders"
)

func testOrders() []orders.Order {
	return []orders.Order{
		{
			ID: "1001", Status: "Completado",
			Date:         time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC),
			CustomerName: "Ana García", City: "Madrid",
			PaymentMethod: "Tarjeta de crédito", Total: 25.50, HasTKCard: true,
			MarketingConsent: "Email y WhatsApp",
		},
		{
			ID: "1002", Status: "Completado",
			Date:         time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC),
			CustomerName: "Luis Martín", City: "Las Rozas",
			PaymentMethod: "Apple Pay", Total: math.NaN(), NeedsTranslation: true,
			MarketingConsent: "No Consiente",
		},
	}
}

func TestBuild(t *testing.T) {
	r := Build("pedidos.csv", testOrders(), config.Default())

	if r.Metrics.TotalOrders != 2 || r.Metrics.TotalRevenue != 25.50 {
		t.Fatalf("metrics: %+v", r.Metrics)
	}
	if len(r.Orders) != 2 {
		t.Fatalf("rows: %d", len(r.Orders))
	}
	if r.Orders[0].Total == nil || *r.Orders[0].Total != 25.50 {
		t.Fatalf("known total should survive: %+v", r.Orders[0])
	}
	if r.Orders[1].Total != nil {
		t.Fatalf("NaN total must become nil, got %v", *r.Orders[1].Total)
	}
	if r.Orders[1].Date != "16/03/2024" {
		t.Fatalf("date: %q", r.Orders[1].Date)
	}
}

func TestWriteJSON_SentinelsSerializable(t *testing.T) {
	r := Build("pedidos.csv", testOrders(), config.Default())
	path := filepath.Join(t.TempDir(), "report.json")

	if err := r.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report JSON not parseable: %v", err)
	}
	if decoded.Metrics.TotalOrders != 2 {
		t.Fatalf("round trip lost metrics: %+v", decoded.Metrics)
	}
}

func TestRenderText_EmptyState(t *testing.T) {
	r := Build("vacio.csv", nil, config.Default())
	var buf bytes.Buffer
	r.RenderText(&buf)

	if !strings.Contains(buf.String(), "No hay datos para mostrar") {
		t.Fatalf("empty state missing:\n%s", buf.String())
	}
}

func TestRenderText_Dashboard(t *testing.T) {
	r := Build("pedidos.csv", testOrders(), config.Default())
	var buf bytes.Buffer
	r.RenderText(&buf)
	out := buf.String()

	for _, want := range []string{"25,50 €", "Top ciudades", "Madrid", "1002", "—"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	r := Build("pedidos.csv", testOrders(), config.Default())
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := r.WriteXLSX(path); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("workbook not written: %v", err)
	}
}

func TestOutputFileName(t *testing.T) {
	got := OutputFileName("{name}_{timestamp}_{uuid}", "/data/pedidos marzo.csv", ".json")

	if !strings.HasPrefix(got, "pedidos marzo_") || !strings.HasSuffix(got, ".json") {
		t.Fatalf("got %q", got)
	}
	uuidRe := regexp.MustCompile(`_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.json$`)
	if !uuidRe.MatchString(got) {
		t.Fatalf("uuid placeholder not expanded: %q", got)
	}
}
