package blugekey

import (
	"context"
	"html/template"
	"maps"
	"slices"
	"strconv"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/search"
	"github.com/blugelabs/bluge/search/highlight"

	"github.com/ai8future/searchkey"
)

// allField is the composite field queried by Prefix and Fuzzy.
const allField = "_all"

// A Pool holds documents and an in-memory index over them.
type Pool[T any] struct {
	documents []T
	fields    map[string]func(T) string // field name => getter, all given fields are indexed
	reader    *bluge.Reader
}

// Result is a match with its fields rendered as HTML, highlighted where they matched.
type Result[T any] struct {
	Document T                        `json:"document"`
	HTML     map[string]template.HTML `json:"html"`
}

// MakePool indexes documents in memory. Field values and search-analyzer
// queries are normalized with n (nil selects searchkey.NormalizeSearch).
func MakePool[T any](documents []T, fields map[string]func(T) string, n searchkey.Normalizer) (*Pool[T], error) {
	if n == nil {
		n = searchkey.NormalizeSearch
	}
	fieldAnalyzer := NewAnalyzer(n)
	fieldNames := slices.Sorted(maps.Keys(fields))

	batch := bluge.NewBatch()
	for i, doc := range documents {
		id := strconv.Itoa(i) // slice index becomes document ID
		blugeDoc := bluge.NewDocument(id)
		for _, name := range fieldNames {
			value := fields[name](doc)
			blugeDoc.AddField(bluge.NewTextField(name, value).WithAnalyzer(fieldAnalyzer).SearchTermPositions().StoreValue())
		}
		blugeDoc.AddField(bluge.NewCompositeFieldIncluding(allField, fieldNames))
		batch.Update(blugeDoc.ID(), blugeDoc)
	}

	config := bluge.InMemoryOnlyConfig()
	config.DefaultSearchAnalyzer.TokenFilters = append(config.DefaultSearchAnalyzer.TokenFilters, TokenFilter{Normalizer: n})

	writer, err := bluge.OpenWriter(config)
	if err != nil {
		return nil, err
	}
	defer writer.Close()
	if err := writer.Batch(batch); err != nil {
		return nil, err
	}

	reader, err := writer.Reader()
	if err != nil {
		return nil, err
	}

	return &Pool[T]{
		documents: documents,
		fields:    fields,
		reader:    reader,
	}, nil
}

// Close releases the index reader.
func (pool *Pool[T]) Close() error {
	return pool.reader.Close()
}

// Search runs request and returns the matching documents in score order.
func (pool *Pool[T]) Search(ctx context.Context, request bluge.SearchRequest) ([]T, error) {
	iterator, err := pool.reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var results []T
	match, err := iterator.Next()
	for err == nil && match != nil {
		index, verr := pool.documentIndex(match, nil)
		if verr != nil {
			return nil, verr
		}
		results = append(results, pool.documents[index])
		match, err = iterator.Next()
	}
	return results, err
}

// SearchHighlight is Search with every field rendered as HTML.
// Matched terms are wrapped in <mark> by bluge's HTML highlighter.
func (pool *Pool[T]) SearchHighlight(ctx context.Context, request *bluge.TopNSearch) ([]Result[T], error) {
	request = request.IncludeLocations()

	iterator, err := pool.reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	highlighter := highlight.NewHTMLHighlighter()
	var results []Result[T]
	match, err := iterator.Next()
	for err == nil && match != nil {
		html := make(map[string]template.HTML)
		index, verr := pool.documentIndex(match, func(field string, value []byte) {
			if locations, ok := match.Locations[field]; ok {
				if fragment := highlighter.BestFragment(locations, value); len(fragment) > 0 {
					html[field] = template.HTML(fragment)
				}
			}
		})
		if verr != nil {
			return nil, verr
		}

		// fields without a highlight are escaped as plain text
		for name, get := range pool.fields {
			if _, ok := html[name]; !ok {
				html[name] = template.HTML(template.HTMLEscapeString(get(pool.documents[index])))
			}
		}
		results = append(results, Result[T]{
			Document: pool.documents[index],
			HTML:     html,
		})
		match, err = iterator.Next()
	}
	return results, err
}

// documentIndex reads the slice index stored as _id and passes every other
// stored field except _all to visit.
func (pool *Pool[T]) documentIndex(match *search.DocumentMatch, visit func(field string, value []byte)) (int, error) {
	var index int
	err := match.VisitStoredFields(func(field string, value []byte) bool {
		switch field {
		case "_id":
			if i, err := strconv.Atoi(string(value)); err == nil {
				index = i
			}
		case allField:
		default:
			if visit != nil {
				visit(field, value)
			}
		}
		return true
	})
	return index, err
}
