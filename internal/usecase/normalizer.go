package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UnknownKey is the grouping key for items whose product name is missing
// or strips down to nothing.
const UnknownKey = "unknown"

// Package-level compiled regex patterns for performance
var (
	// Matches any alphanumeric run containing 3+ consecutive digits,
	// treated as a manufacturer part code (e.g. "xr12345", "w950", "0986b")
	partCodeRegex = regexp.MustCompile(`[a-z0-9]*[0-9]{3,}[a-z0-9]*`)

	// Anything that is not a lowercase letter, digit or space after folding
	nonAlnumRegex = regexp.MustCompile(`[^a-z0-9 ]+`)

	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// deaccent strips combining marks so "Suspensão" and "Suspensao" fold to
// the same key regardless of how the extractor spelled it.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// defaultStripStems are removed wherever they occur, together with any
// trailing letters ("dianteir" covers dianteira/dianteiro/dianteiras).
// Side and position qualifiers in Portuguese plus the English equivalents.
var defaultStripStems = []string{
	"dianteir", "traseir", "esquerd", "direit",
	"front", "rear", "left", "right",
}

// defaultStripTokens are removed only as whole tokens: packaging and unit
// words, their abbreviations, and the connector stopwords that otherwise
// keep "pastilha de freio" and "pastilha freio" apart.
var defaultStripTokens = []string{
	"de", "da", "do", "das", "dos", "para", "com", "cada",
	"lado", "diant", "tras", "esq", "dir", "ld", "le",
	"par", "pair", "kit", "jogo", "jg", "conjunto", "conj",
	"unidade", "unidades", "unid", "und", "un", "pc", "pcs", "pca",
	"set", "unit",
}

// NormalizerConfig holds the qualifier vocabulary. Both lists default to
// the Brazilian-Portuguese automotive vocabulary when empty, and are meant
// to be swapped per target market through configuration.
type NormalizerConfig struct {
	StripStems  []string
	StripTokens []string
}

// Normalizer canonicalizes raw product names into grouping keys.
type Normalizer struct {
	stemRegex   *regexp.Regexp
	stripTokens map[string]bool
}

// NewNormalizer creates a normalizer with the given vocabulary.
func NewNormalizer(config NormalizerConfig) *Normalizer {
	stems := config.StripStems
	if len(stems) == 0 {
		stems = defaultStripStems
	}
	tokens := config.StripTokens
	if len(tokens) == 0 {
		tokens = defaultStripTokens
	}

	quoted := make([]string, 0, len(stems))
	for _, stem := range stems {
		stem = strings.TrimSpace(strings.ToLower(stem))
		if stem != "" {
			quoted = append(quoted, regexp.QuoteMeta(stem))
		}
	}

	tokenSet := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(strings.ToLower(tok))
		if tok != "" {
			tokenSet[tok] = true
		}
	}

	n := &Normalizer{stripTokens: tokenSet}
	if len(quoted) > 0 {
		// Trailing letters are consumed so gender/plural variants of a
		// stem collapse to the same removal
		n.stemRegex = regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)[a-z]*`)
	}
	return n
}

// Normalize canonicalizes a raw product name into a grouping key.
// Empty input, or input that strips down to nothing, maps to UnknownKey.
// The strip pipeline runs to a fixed point, which makes the function
// idempotent even when a removal joins two fragments into a new part code.
func (n *Normalizer) Normalize(name string) string {
	current := fold(name)
	for i := 0; i < 8; i++ {
		next := n.stripPass(current)
		if next == current {
			break
		}
		current = next
	}
	if current == "" {
		return UnknownKey
	}
	return current
}

// stripPass applies one round of qualifier and part-code removal.
func (n *Normalizer) stripPass(s string) string {
	s = partCodeRegex.ReplaceAllString(s, " ")
	if n.stemRegex != nil {
		s = n.stemRegex.ReplaceAllString(s, " ")
	}

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if !n.stripTokens[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// fold lower-cases and de-accents a name with fixed, locale-independent
// rules, then drops punctuation and collapses whitespace.
func fold(s string) string {
	s = strings.ToLower(s)
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}
	s = nonAlnumRegex.ReplaceAllString(s, " ")
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
