// Package blugekey plugs searchkey normalizers into bluge full-text indexes,
// so indexed text and queries fold accents, digits and Arabic variants the same way.
package blugekey

import (
	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/analyzer"

	"github.com/ai8future/searchkey"
)

// TokenFilter rewrites every term with a searchkey.Normalizer.
// Terms that normalize to nothing are dropped.
type TokenFilter struct {
	Normalizer searchkey.Normalizer
}

// Filter implements analysis.TokenFilter.
func (f TokenFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	n := f.Normalizer
	if n == nil {
		n = searchkey.NormalizeSearch
	}
	output := make(analysis.TokenStream, 0, len(input))
	for _, tok := range input {
		term := n(string(tok.Term))
		if term == "" {
			continue
		}
		tok.Term = []byte(term)
		output = append(output, tok)
	}
	return output
}

// NewAnalyzer returns bluge's standard analyzer followed by a TokenFilter for n.
// Offsets are untouched, so highlighting keeps pointing at the original text.
func NewAnalyzer(n searchkey.Normalizer) *analysis.Analyzer {
	a := analyzer.NewStandardAnalyzer()
	a.TokenFilters = append(a.TokenFilters, TokenFilter{Normalizer: n})
	return a
}
