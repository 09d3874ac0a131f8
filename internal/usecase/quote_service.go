package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/autoquote/backend/internal/domain"
	"github.com/autoquote/backend/internal/infrastructure/extraction"
)

// QuoteServiceConfig holds configuration for the quote service.
type QuoteServiceConfig struct {
	Normalizer         NormalizerConfig
	EnableDebugLogging bool
}

// QuoteService orchestrates the quote session: extraction intake, the
// working item list, winner selection, tiered comparison and aggregates.
// The engine itself is stateless; the only state lives in the store the
// service was given.
type QuoteService struct {
	store      domain.ItemStore
	extractor  domain.ExtractionClient
	normalizer *Normalizer
	classifier *Classifier
	grouper    *Grouper
	selector   *WinnerSelector
	debug      bool
}

// NewQuoteService creates a quote service with its dependencies.
func NewQuoteService(
	store domain.ItemStore,
	extractor domain.ExtractionClient,
	config QuoteServiceConfig,
) *QuoteService {
	normalizer := NewNormalizer(config.Normalizer)
	classifier := NewClassifier(normalizer)

	return &QuoteService{
		store:      store,
		extractor:  extractor,
		normalizer: normalizer,
		classifier: classifier,
		grouper:    NewGrouper(normalizer, classifier),
		selector:   NewWinnerSelector(normalizer),
		debug:      config.EnableDebugLogging,
	}
}

// ExtractFromText sends raw quotation text to the extraction service and
// appends the resulting items to the session.
func (s *QuoteService) ExtractFromText(ctx context.Context, text string) ([]domain.QuoteItem, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrInvalidRequest
	}

	raw, err := s.extractor.ExtractQuotes(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailure, err)
	}

	items := extraction.MapQuotes(raw)
	if s.debug {
		log.Printf("[EXTRACT] %d raw records mapped to %d items", len(raw), len(items))
	}

	if err := s.store.Append(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddItems appends already-structured records to the session, assigning
// identity where missing. This is the manual-entry path.
func (s *QuoteService) AddItems(ctx context.Context, raw []domain.RawQuote) ([]domain.QuoteItem, error) {
	if len(raw) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	items := extraction.MapQuotes(raw)
	if err := s.store.Append(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Items returns the flat annotated item collection.
func (s *QuoteService) Items(ctx context.Context) ([]domain.QuoteItem, error) {
	return s.store.List(ctx)
}

// RemoveItem removes one item from the session.
func (s *QuoteService) RemoveItem(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

// ToggleSelection flips the selected flag of one item.
func (s *QuoteService) ToggleSelection(ctx context.Context, id string) (domain.QuoteItem, error) {
	return s.store.Toggle(ctx, id)
}

// ClearSession drops every item in the session.
func (s *QuoteService) ClearSession(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// SelectWinners rewrites the selected flags so that exactly the cheapest
// item per normalized product key is selected, and persists the result.
func (s *QuoteService) SelectWinners(ctx context.Context) ([]domain.QuoteItem, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.selector.SelectWinners(items); err != nil {
		return nil, err
	}
	if err := s.store.Replace(ctx, items); err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("[WINNERS] selection rewritten across %d items", len(items))
	}
	return items, nil
}

// Comparison builds the tiered family -> offer group -> best offer view.
func (s *QuoteService) Comparison(ctx context.Context) ([]domain.FamilyGroup, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.grouper.FamilyGroups(items), nil
}

// Summary computes the aggregate metrics for the current session.
func (s *QuoteService) Summary(ctx context.Context) (domain.Summary, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return Summarize(items, s.grouper.FamilyGroups(items)), nil
}
