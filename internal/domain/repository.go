package domain

import "context"

// ItemStore defines the session-scoped store for the working item list.
// Implementations must preserve insertion order: the stable tie-breaks in
// winner selection and tier resolution depend on it.
type ItemStore interface {
	List(ctx context.Context) ([]QuoteItem, error)
	Append(ctx context.Context, items []QuoteItem) error
	Replace(ctx context.Context, items []QuoteItem) error
	Remove(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) (QuoteItem, error)
	Clear(ctx context.Context) error
}

// ExtractionClient defines the interface to the external AI extraction
// service that turns raw quotation text into structured records.
type ExtractionClient interface {
	ExtractQuotes(ctx context.Context, text string) ([]RawQuote, error)
}
