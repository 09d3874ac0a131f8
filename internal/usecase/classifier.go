package usecase

import (
	"strings"

	"github.com/autoquote/backend/internal/domain"
)

// Classifier assigns a part family to quote items. Brand matching runs
// before keyword matching because brand is the higher-confidence signal;
// families are tested in taxonomy order, first match wins.
type Classifier struct {
	families   []Family
	normalizer *Normalizer
	premium    []string
}

// NewClassifier creates a classifier over the built-in taxonomy.
func NewClassifier(normalizer *Normalizer) *Classifier {
	return &Classifier{
		families:   defaultFamilies,
		normalizer: normalizer,
		premium:    premiumBrands,
	}
}

// FamilyNames returns the enumerated family set in classification order,
// fallback last.
func (c *Classifier) FamilyNames() []string {
	names := make([]string, 0, len(c.families)+1)
	for _, f := range c.families {
		names = append(names, f.Name)
	}
	return append(names, FallbackFamily)
}

// Classify returns the part family for an item. Total: it never fails and
// falls back to FallbackFamily when nothing matches.
func (c *Classifier) Classify(item domain.QuoteItem) string {
	if brand := fold(item.Brand); brand != "" {
		for _, f := range c.families {
			for _, tok := range f.Brands {
				if strings.Contains(brand, tok) {
					return f.Name
				}
			}
		}
	}

	if name := c.normalizer.Normalize(item.ProductName); name != UnknownKey {
		for _, f := range c.families {
			for _, kw := range f.Keywords {
				if strings.Contains(name, kw) {
					return f.Name
				}
			}
		}
	}

	return FallbackFamily
}

// IsPremium reports whether a brand belongs to the curated premium set.
func (c *Classifier) IsPremium(brand string) bool {
	folded := fold(brand)
	if folded == "" {
		return false
	}
	for _, p := range c.premium {
		if strings.Contains(folded, p) {
			return true
		}
	}
	return false
}
