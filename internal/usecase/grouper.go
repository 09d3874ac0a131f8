package usecase

import (
	"sort"

	"github.com/autoquote/backend/internal/domain"
)

// Grouper partitions quote items into competing offers: first by part
// family, then by normalized product key.
type Grouper struct {
	normalizer *Normalizer
	classifier *Classifier
	resolver   *TierResolver
}

// NewGrouper creates a grouper over the given normalizer and classifier.
func NewGrouper(normalizer *Normalizer, classifier *Classifier) *Grouper {
	return &Grouper{
		normalizer: normalizer,
		classifier: classifier,
		resolver:   NewTierResolver(classifier),
	}
}

// Group partitions items into family -> normalized key -> members.
// Unnamed and unpriced items cannot participate in a comparison and are
// dropped before grouping. Bucket lists keep insertion order; price
// ordering is applied downstream by the tier resolver.
func (g *Grouper) Group(items []domain.QuoteItem) map[string]map[string][]domain.QuoteItem {
	grouped := make(map[string]map[string][]domain.QuoteItem)
	for _, item := range items {
		if item.ProductName == "" || !item.HasPrice() {
			continue
		}
		family := g.classifier.Classify(item)
		key := g.normalizer.Normalize(item.ProductName)

		if grouped[family] == nil {
			grouped[family] = make(map[string][]domain.QuoteItem)
		}
		grouped[family][key] = append(grouped[family][key], item)
	}
	return grouped
}

// FamilyGroups builds the presentation structure: families in taxonomy
// order (fallback last), each with its offer groups resolved into tiered
// best offers. Groups are ordered by savings potential descending, so the
// biggest spreads surface first, with the key as a deterministic tie-break.
func (g *Grouper) FamilyGroups(items []domain.QuoteItem) []domain.FamilyGroup {
	grouped := g.Group(items)

	var families []domain.FamilyGroup
	for _, name := range g.classifier.FamilyNames() {
		buckets := grouped[name]
		if len(buckets) == 0 {
			continue
		}

		groups := make([]domain.TieredGroup, 0, len(buckets))
		for key, members := range buckets {
			groups = append(groups, g.resolver.Resolve(key, members))
		}
		sort.SliceStable(groups, func(i, j int) bool {
			if groups[i].Best.SavingsPotential != groups[j].Best.SavingsPotential {
				return groups[i].Best.SavingsPotential > groups[j].Best.SavingsPotential
			}
			return groups[i].Group.Key < groups[j].Group.Key
		})

		families = append(families, domain.FamilyGroup{Family: name, Groups: groups})
	}
	return families
}
