package usecase

import (
	"sort"

	"github.com/autoquote/backend/internal/domain"
)

// TierResolver ranks the offers inside one normalized-key group and picks
// the recommended item: cheapest premium-brand offer when one exists,
// cheapest overall otherwise.
type TierResolver struct {
	classifier *Classifier
}

// NewTierResolver creates a resolver using the classifier's premium set.
func NewTierResolver(classifier *Classifier) *TierResolver {
	return &TierResolver{classifier: classifier}
}

// Resolve computes the tiered view of one offer group. Pure: the input
// slice is never mutated and identical inputs yield identical output,
// including on price ties (stable sort, first-seen wins).
func (r *TierResolver) Resolve(key string, members []domain.QuoteItem) domain.TieredGroup {
	sorted := sortByPrice(members)

	var premium []domain.QuoteItem
	for _, item := range sorted {
		if r.classifier.IsPremium(item.Brand) {
			premium = append(premium, item)
		}
	}

	best := domain.BestOffer{Key: key, PremiumCandidates: premium}
	if len(premium) > 0 {
		best.Recommended = premium[0]
	} else if len(sorted) > 0 {
		best.Recommended = sorted[0]
	}

	// A spread only exists with at least two premium candidates
	if len(premium) >= 2 {
		if spread := premium[len(premium)-1].Price() - best.Recommended.Price(); spread > 0 {
			best.SavingsPotential = spread
		}
	}

	return domain.TieredGroup{
		Group: domain.OfferGroup{Key: key, Members: sorted},
		Best:  best,
	}
}

// sortByPrice returns a copy of the priced members, ascending by unit
// price with input order preserved on ties.
func sortByPrice(members []domain.QuoteItem) []domain.QuoteItem {
	sorted := make([]domain.QuoteItem, 0, len(members))
	for _, item := range members {
		if item.HasPrice() {
			sorted = append(sorted, item)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price() < sorted[j].Price()
	})
	return sorted
}
