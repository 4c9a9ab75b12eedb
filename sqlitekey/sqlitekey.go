// Package sqlitekey exposes searchkey normalizers as SQLite functions, so keys
// can be computed inside queries, generated columns and indexes:
//
//	CREATE TABLE people (
//	    name     TEXT NOT NULL,
//	    name_key TEXT GENERATED ALWAYS AS (search_key_ar(name)) STORED
//	);
//	CREATE INDEX people_name_key ON people (name_key);
//	SELECT name FROM people WHERE name_key = search_key_ar(?);
package sqlitekey

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"
	"sync"

	"modernc.org/sqlite"

	"github.com/ai8future/searchkey"
)

// Functions maps SQL function names to the normalizer they apply.
var Functions = map[string]searchkey.Normalizer{
	"search_key":       searchkey.NormalizeSearch,
	"search_key_ar":    searchkey.NormalizeSearchArabic,
	"search_phrase":    searchkey.NormalizePhraseSearch,
	"search_phrase_ar": searchkey.NormalizePhraseArabic,
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register adds the search functions to every connection opened by the
// "sqlite" driver. It is safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		for name, n := range Functions {
			if err := sqlite.RegisterDeterministicScalarFunction(name, 1, scalar(n)); err != nil {
				registerErr = fmt.Errorf("register %s: %w", name, err)
				return
			}
		}
	})
	return registerErr
}

// Open registers the functions and opens the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	if err := Register(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

func scalar(n searchkey.Normalizer) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		return n(text(args[0])), nil
	}
}

// text converts an SQLite value to its text form. NULL becomes "".
func text(v driver.Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
