package blugekey

import (
	"strings"

	"github.com/blugelabs/bluge"

	"github.com/ai8future/searchkey"
)

// maxQueryWords caps how many words of the input become query clauses.
const maxQueryWords = 5

// queryWords splits input on white space and normalizes each word with n.
// PrefixQuery and friends bypass the search analyzer, so this is done by hand.
func queryWords(input string, n searchkey.Normalizer) []string {
	if n == nil {
		n = searchkey.NormalizeSearch
	}
	var words []string
	for _, f := range strings.Fields(input) {
		if w := n(f); w != "" {
			words = append(words, w)
		}
		if len(words) == maxQueryWords {
			break
		}
	}
	return words
}

// Fuzzy matches documents where every word is within edit distance 1,
// a prefix, or a substring of an indexed term.
func Fuzzy(input string, max int, n searchkey.Normalizer) *bluge.TopNSearch {
	query := bluge.NewBooleanQuery()
	for _, word := range queryWords(input, n) {
		wordQuery := bluge.NewBooleanQuery()
		wordQuery.AddShould(bluge.NewFuzzyQuery(word).SetField(allField).SetFuzziness(1))
		wordQuery.AddShould(bluge.NewPrefixQuery(word).SetField(allField))
		wordQuery.AddShould(bluge.NewWildcardQuery("*" + word + "*").SetField(allField))
		query.AddMust(wordQuery)
	}
	return bluge.NewTopNSearch(max, query)
}

// Prefix matches documents where every word is a prefix of an indexed term.
func Prefix(input string, max int, n searchkey.Normalizer) *bluge.TopNSearch {
	query := bluge.NewBooleanQuery()
	for _, word := range queryWords(input, n) {
		query.AddMust(bluge.NewPrefixQuery(word).SetField(allField))
	}
	return bluge.NewTopNSearch(max, query)
}
