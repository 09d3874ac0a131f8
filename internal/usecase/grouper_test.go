package usecase

import (
	"testing"

	"github.com/autoquote/backend/internal/domain"
)

func newTestGrouper() *Grouper {
	normalizer := NewNormalizer(NormalizerConfig{})
	return NewGrouper(normalizer, NewClassifier(normalizer))
}

func TestGroup(t *testing.T) {
	g := newTestGrouper()

	items := []domain.QuoteItem{
		{ID: "1", ProductName: "Pastilha de Freio Dianteira", Brand: "TRW", UnitPrice: fptr(185.50)},
		{ID: "2", ProductName: "Pastilha Freio Dianteira", Brand: "Frasle", UnitPrice: fptr(178.00)},
		{ID: "3", ProductName: "Amortecedor Traseiro", Brand: "Monroe", UnitPrice: fptr(310.00)},
		{ID: "4", ProductName: "", Brand: "Bosch", UnitPrice: fptr(50.00)},
		{ID: "5", ProductName: "Filtro de Óleo", Brand: "Mann", UnitPrice: nil},
	}

	grouped := g.Group(items)

	braking := grouped["Braking System"]
	if braking == nil {
		t.Fatal("no Braking System bucket")
	}
	pads := braking["pastilha freio"]
	if len(pads) != 2 {
		t.Fatalf("pastilha freio group has %d members, want 2", len(pads))
	}
	// Name variants collapsed onto one key, insertion order preserved
	if pads[0].ID != "1" || pads[1].ID != "2" {
		t.Errorf("group order = [%s %s], want [1 2]", pads[0].ID, pads[1].ID)
	}

	suspension := grouped["Suspension & Steering"]
	if len(suspension["amortecedor"]) != 1 {
		t.Errorf("amortecedor group has %d members, want 1", len(suspension["amortecedor"]))
	}

	// Unnamed and unpriced items never enter a comparison
	total := 0
	for _, buckets := range grouped {
		for _, members := range buckets {
			total += len(members)
		}
	}
	if total != 3 {
		t.Errorf("grouped %d items, want 3", total)
	}
}

func TestFamilyGroups(t *testing.T) {
	g := newTestGrouper()

	items := []domain.QuoteItem{
		// Electrical group with a 70 spread between premium candidates
		{ID: "1", ProductName: "Bateria 60Ah", Brand: "Bosch", UnitPrice: fptr(450)},
		{ID: "2", ProductName: "Bateria 60Ah", Brand: "Magneti Marelli", UnitPrice: fptr(520)},
		// Electrical group with no spread
		{ID: "3", ProductName: "Vela de Ignição", Brand: "NGK", UnitPrice: fptr(35)},
		// Braking group, listed later but an earlier family
		{ID: "4", ProductName: "Disco de Freio", Brand: "Fremax", UnitPrice: fptr(320)},
	}

	families := g.FamilyGroups(items)

	if len(families) != 2 {
		t.Fatalf("got %d families, want 2", len(families))
	}
	// Families come out in taxonomy order, not input order
	if families[0].Family != "Braking System" {
		t.Errorf("families[0] = %q, want Braking System", families[0].Family)
	}
	if families[1].Family != "Electrical & Injection" {
		t.Errorf("families[1] = %q, want Electrical & Injection", families[1].Family)
	}

	electrical := families[1].Groups
	if len(electrical) != 2 {
		t.Fatalf("electrical has %d groups, want 2", len(electrical))
	}
	// Biggest savings spread surfaces first
	if electrical[0].Group.Key != "bateria 60ah" {
		t.Errorf("first electrical group = %q, want bateria 60ah", electrical[0].Group.Key)
	}
	if electrical[0].Best.SavingsPotential != 70 {
		t.Errorf("SavingsPotential = %v, want 70", electrical[0].Best.SavingsPotential)
	}
	if electrical[0].Best.Recommended.ID != "1" {
		t.Errorf("Recommended.ID = %q, want 1", electrical[0].Best.Recommended.ID)
	}
}

func TestFamilyGroupsEmptyFamiliesOmitted(t *testing.T) {
	g := newTestGrouper()

	families := g.FamilyGroups([]domain.QuoteItem{
		{ID: "1", ProductName: "Pastilha de Freio", Brand: "TRW", UnitPrice: fptr(100)},
	})

	if len(families) != 1 {
		t.Fatalf("got %d families, want 1", len(families))
	}
	if families[0].Family != "Braking System" {
		t.Errorf("family = %q, want Braking System", families[0].Family)
	}
}

func TestFamilyGroupsSavingsTieBreaksOnKey(t *testing.T) {
	g := newTestGrouper()

	// Two braking groups with identical (zero) savings must order by key
	families := g.FamilyGroups([]domain.QuoteItem{
		{ID: "1", ProductName: "Tambor de Freio", UnitPrice: fptr(200)},
		{ID: "2", ProductName: "Disco de Freio", UnitPrice: fptr(300)},
	})

	if len(families) != 1 {
		t.Fatalf("got %d families, want 1", len(families))
	}
	groups := families[0].Groups
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Group.Key != "disco freio" || groups[1].Group.Key != "tambor freio" {
		t.Errorf("group order = [%s %s], want [disco freio tambor freio]",
			groups[0].Group.Key, groups[1].Group.Key)
	}
}

func TestFamilyGroupsEmptyInput(t *testing.T) {
	g := newTestGrouper()
	if families := g.FamilyGroups(nil); len(families) != 0 {
		t.Errorf("FamilyGroups(nil) = %d families, want 0", len(families))
	}
}
