package usecase

import (
	"testing"

	"github.com/autoquote/backend/internal/domain"
)

func TestSummarize(t *testing.T) {
	g := newTestGrouper()

	t.Run("totals exclude unknown prices", func(t *testing.T) {
		items := []domain.QuoteItem{
			{ID: "1", ProductName: "Pastilha de Freio", SupplierName: "A", UnitPrice: fptr(100), Selected: true},
			{ID: "2", ProductName: "Disco de Freio", SupplierName: "B", UnitPrice: fptr(300)},
			{ID: "3", ProductName: "Filtro de Óleo", SupplierName: "A", UnitPrice: nil, Selected: true},
		}

		summary := Summarize(items, g.FamilyGroups(items))

		if summary.TotalQuoted != 400 {
			t.Errorf("TotalQuoted = %v, want 400", summary.TotalQuoted)
		}
		if summary.SelectedTotal != 100 {
			t.Errorf("SelectedTotal = %v, want 100", summary.SelectedTotal)
		}
		// The unpriced selected item still counts as an item
		if summary.SelectedCount != 2 {
			t.Errorf("SelectedCount = %d, want 2", summary.SelectedCount)
		}
	})

	t.Run("supplier rollups in first-seen order", func(t *testing.T) {
		items := []domain.QuoteItem{
			{ID: "1", ProductName: "Vela", SupplierName: "Zeta Peças", UnitPrice: fptr(30), Selected: true},
			{ID: "2", ProductName: "Bateria", SupplierName: "Alfa Autopeças", UnitPrice: fptr(450), Selected: true},
			{ID: "3", ProductName: "Bobina", SupplierName: "Zeta Peças", UnitPrice: fptr(120), Selected: true},
			{ID: "4", ProductName: "Sensor", SupplierName: "Alfa Autopeças", UnitPrice: fptr(80)},
		}

		summary := Summarize(items, nil)

		if len(summary.Suppliers) != 2 {
			t.Fatalf("got %d suppliers, want 2", len(summary.Suppliers))
		}
		// First-seen order, not alphabetical
		if summary.Suppliers[0].Supplier != "Zeta Peças" {
			t.Errorf("Suppliers[0] = %q, want Zeta Peças", summary.Suppliers[0].Supplier)
		}
		if summary.Suppliers[0].Items != 2 || summary.Suppliers[0].Total != 150 {
			t.Errorf("Zeta rollup = %d items / %v, want 2 / 150",
				summary.Suppliers[0].Items, summary.Suppliers[0].Total)
		}
		if summary.Suppliers[1].Items != 1 || summary.Suppliers[1].Total != 450 {
			t.Errorf("Alfa rollup = %d items / %v, want 1 / 450",
				summary.Suppliers[1].Items, summary.Suppliers[1].Total)
		}
	})

	t.Run("missing supplier name buckets under fallback", func(t *testing.T) {
		items := []domain.QuoteItem{
			{ID: "1", ProductName: "Vela", UnitPrice: fptr(30), Selected: true},
		}

		summary := Summarize(items, nil)
		if len(summary.Suppliers) != 1 || summary.Suppliers[0].Supplier != FallbackSupplier {
			t.Errorf("Suppliers = %+v, want one %q bucket", summary.Suppliers, FallbackSupplier)
		}
	})

	t.Run("savings counted only for selected recommendations", func(t *testing.T) {
		items := []domain.QuoteItem{
			// Recommended (cheapest premium) and selected: savings count
			{ID: "1", ProductName: "Pastilha de Freio", Brand: "TRW", UnitPrice: fptr(250), Selected: true},
			{ID: "2", ProductName: "Pastilha de Freio", Brand: "Fremax", UnitPrice: fptr(300)},
			// Recommendation exists but the buyer kept a different item
			{ID: "3", ProductName: "Bateria", Brand: "Bosch", UnitPrice: fptr(400)},
			{ID: "4", ProductName: "Bateria", Brand: "Magneti Marelli", UnitPrice: fptr(480), Selected: true},
		}

		summary := Summarize(items, g.FamilyGroups(items))

		// Only the pastilha group's 50 counts; the bateria 80 does not
		if summary.TotalSavings != 50 {
			t.Errorf("TotalSavings = %v, want 50", summary.TotalSavings)
		}
	})

	t.Run("empty session yields zero summary", func(t *testing.T) {
		summary := Summarize(nil, nil)
		if summary.TotalQuoted != 0 || summary.SelectedTotal != 0 ||
			summary.SelectedCount != 0 || summary.TotalSavings != 0 || len(summary.Suppliers) != 0 {
			t.Errorf("Summarize(nil, nil) = %+v, want zero value", summary)
		}
	})
}
