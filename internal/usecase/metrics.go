package usecase

import (
	"github.com/autoquote/backend/internal/domain"
)

// FallbackSupplier labels rollup buckets for items without a supplier name.
const FallbackSupplier = "Unknown"

// Summarize reduces an item collection and its tiered comparison into the
// session aggregates. Unknown prices are excluded from every sum, never
// treated as zero. Supplier rollups cover selected items only, in
// first-seen order. Savings are counted only for groups whose recommended
// pick the caller actually kept selected.
func Summarize(items []domain.QuoteItem, families []domain.FamilyGroup) domain.Summary {
	summary := domain.Summary{}

	selectedIDs := make(map[string]bool)
	rollupIndex := make(map[string]int)
	for _, item := range items {
		if item.HasPrice() {
			summary.TotalQuoted += item.Price()
		}
		if !item.Selected {
			continue
		}
		selectedIDs[item.ID] = true
		summary.SelectedCount++
		if item.HasPrice() {
			summary.SelectedTotal += item.Price()
		}

		supplier := item.SupplierName
		if supplier == "" {
			supplier = FallbackSupplier
		}
		idx, ok := rollupIndex[supplier]
		if !ok {
			idx = len(summary.Suppliers)
			rollupIndex[supplier] = idx
			summary.Suppliers = append(summary.Suppliers, domain.SupplierRollup{Supplier: supplier})
		}
		summary.Suppliers[idx].Items++
		if item.HasPrice() {
			summary.Suppliers[idx].Total += item.Price()
		}
	}

	for _, family := range families {
		for _, group := range family.Groups {
			if selectedIDs[group.Best.Recommended.ID] {
				summary.TotalSavings += group.Best.SavingsPotential
			}
		}
	}

	return summary
}
