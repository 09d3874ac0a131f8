package extraction

import (
	"strings"

	"github.com/autoquote/backend/internal/domain"
	"github.com/google/uuid"
)

// MapQuotes converts raw extraction records into session quote items.
// Every item gets a unique id: the extractor's when it assigned one, a
// fresh uuid otherwise. Non-conforming values degrade to sentinels rather
// than failing: blank strings collapse to empty, negative prices are
// treated as unknown.
func MapQuotes(raw []domain.RawQuote) []domain.QuoteItem {
	items := make([]domain.QuoteItem, 0, len(raw))
	for _, r := range raw {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			id = uuid.NewString()
		}

		price := r.UnitPrice
		if price != nil && *price < 0 {
			price = nil
		}

		items = append(items, domain.QuoteItem{
			ID:           id,
			ProductName:  strings.TrimSpace(r.ProductName),
			Brand:        strings.TrimSpace(r.Brand),
			SupplierName: strings.TrimSpace(r.SupplierName),
			UnitPrice:    price,
		})
	}
	return items
}
