package usecase

import (
	"github.com/autoquote/backend/internal/domain"
)

// WinnerSelector marks the cheapest quote per normalized product key as
// selected. This is the global best-price pass: family is irrelevant here,
// grouping is by normalized name alone.
type WinnerSelector struct {
	normalizer *Normalizer
}

// NewWinnerSelector creates a selector using the given normalizer.
func NewWinnerSelector(normalizer *Normalizer) *WinnerSelector {
	return &WinnerSelector{normalizer: normalizer}
}

// SelectWinners rewrites the Selected flag on every item in the slice:
// previous selections are discarded, not merged. Within each key group the
// winner is the minimum-price item, first-seen on ties. Unpriced items are
// never winners; unnamed items are excluded from grouping entirely. Both
// end up deselected but stay in the collection.
//
// Returns ErrDuplicateID when two items share an id, since selection per
// key would otherwise be ambiguous.
func (s *WinnerSelector) SelectWinners(items []domain.QuoteItem) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item.ID] {
			return domain.ErrDuplicateID
		}
		seen[item.ID] = true
	}

	winners := make(map[string]int)
	for i := range items {
		items[i].Selected = false
		if items[i].ProductName == "" || !items[i].HasPrice() {
			continue
		}
		key := s.normalizer.Normalize(items[i].ProductName)
		if j, ok := winners[key]; !ok || items[i].Price() < items[j].Price() {
			winners[key] = i
		}
	}

	for _, i := range winners {
		items[i].Selected = true
	}
	return nil
}
