package domain

// QuoteItem is one quoted line for one part from one supplier.
// All descriptive fields are optional as received from extraction;
// UnitPrice is nil when the price is unknown, and such items are
// excluded from every price comparison rather than treated as zero.
type QuoteItem struct {
	ID           string   `json:"id"`
	ProductName  string   `json:"productName,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	SupplierName string   `json:"supplierName,omitempty"`
	UnitPrice    *float64 `json:"unitPrice"`
	Selected     bool     `json:"selected"`
}

// HasPrice reports whether the item carries a known unit price.
func (q QuoteItem) HasPrice() bool {
	return q.UnitPrice != nil
}

// Price returns the unit price, or 0 when unknown. Callers must check
// HasPrice before using the value in a comparison.
func (q QuoteItem) Price() float64 {
	if q.UnitPrice == nil {
		return 0
	}
	return *q.UnitPrice
}

// RawQuote is a raw record produced by the external extraction service.
// ID is honored when the extractor already assigned one; otherwise the
// session assigns a fresh identity during mapping.
type RawQuote struct {
	ID           string   `json:"id,omitempty"`
	ProductName  string   `json:"productName"`
	Brand        string   `json:"brand"`
	SupplierName string   `json:"supplierName"`
	UnitPrice    *float64 `json:"unitPrice"`
}

// OfferGroup holds the items that quote the same logical part.
// Members are sorted ascending by unit price, first-seen order on ties,
// and never contain an unpriced item.
type OfferGroup struct {
	Key     string      `json:"key"`
	Members []QuoteItem `json:"members"`
}

// BestOffer is the tiered recommendation for one offer group:
// the cheapest premium-brand item when one exists, else the cheapest
// overall, plus the price spread available among premium candidates.
type BestOffer struct {
	Key               string      `json:"key"`
	Recommended       QuoteItem   `json:"recommended"`
	PremiumCandidates []QuoteItem `json:"premiumCandidates,omitempty"`
	SavingsPotential  float64     `json:"savingsPotential"`
}

// TieredGroup pairs an offer group with its resolved best offer.
type TieredGroup struct {
	Group OfferGroup `json:"group"`
	Best  BestOffer  `json:"best"`
}

// FamilyGroup buckets tiered groups under one part family for display.
type FamilyGroup struct {
	Family string        `json:"family"`
	Groups []TieredGroup `json:"groups"`
}

// SupplierRollup aggregates the selected items of one supplier.
type SupplierRollup struct {
	Supplier string  `json:"supplier"`
	Items    int     `json:"items"`
	Total    float64 `json:"total"`
}

// Summary holds the aggregate metrics for a quote session.
// TotalSavings only counts groups whose recommended pick is still selected.
type Summary struct {
	TotalQuoted   float64          `json:"totalQuoted"`
	SelectedTotal float64          `json:"selectedTotal"`
	SelectedCount int              `json:"selectedCount"`
	Suppliers     []SupplierRollup `json:"suppliers"`
	TotalSavings  float64          `json:"totalSavings"`
}
