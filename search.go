package searchkey

import (
	"fmt"
	"strings"
)

// maxParamNumber is the PostgreSQL maximum parameter number.
const maxParamNumber = 65535

// isValidColumnName checks if a column name is safe for SQL interpolation:
// a letter or underscore followed by letters, digits or underscores.
func isValidColumnName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// SearchCondition is a SQL WHERE fragment with its positional arguments.
type SearchCondition struct {
	SQL  string // "(secret_id = $1 AND name_digest = $2) OR ..."
	Args []any  // interleaved secret IDs and digests
}

// SearchCondition builds a PostgreSQL WHERE fragment matching s against
// {column}_digest under every active secret:
//
//	(secret_id = $1 AND {column}_digest = $2) OR (secret_id = $3 AND {column}_digest = $4)
//
// paramOffset is the first placeholder number, for composing with other conditions.
// A value whose key is empty matches nothing ("FALSE").
// Panics on an unsafe column name or an out of range offset.
//
// Example:
//
//	cond := d.SearchCondition("name", "Crème Brûlée", 1)
//	rows, _ := db.Query("SELECT id FROM dishes WHERE "+cond.SQL, cond.Args...)
func (d *Digester) SearchCondition(column, s string, paramOffset int) *SearchCondition {
	if !isValidColumnName(column) {
		panic("searchkey: invalid column name (must start with letter/underscore, contain only alphanumeric/underscore)")
	}
	if paramOffset < 1 || paramOffset > maxParamNumber {
		panic(fmt.Sprintf("searchkey: invalid paramOffset (must be 1-%d)", maxParamNumber))
	}

	digests := d.Digests(s)
	if digests == nil {
		return &SearchCondition{SQL: "FALSE"}
	}

	ids := sortedMapKeys(digests)
	if paramOffset+len(ids)*2-1 > maxParamNumber {
		panic(fmt.Sprintf("searchkey: too many secrets (%d) would exceed PostgreSQL parameter limit", len(ids)))
	}

	parts := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids)*2)
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("(secret_id = $%d AND %s_digest = $%d)", paramOffset, column, paramOffset+1))
		args = append(args, id, digests[id])
		paramOffset += 2
	}

	return &SearchCondition{
		SQL:  strings.Join(parts, " OR "),
		Args: args,
	}
}
