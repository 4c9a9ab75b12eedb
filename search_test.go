package searchkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchCondition_SingleSecret(t *testing.T) {
	d := newTestDigester(t)

	cond := d.SearchCondition("name", "Crème Brûlée", 1)

	require.Equal(t, "(secret_id = $1 AND name_digest = $2)", cond.SQL)
	require.Len(t, cond.Args, 2)
	require.Equal(t, "v1", cond.Args[0])
	require.Equal(t, d.Digest("cremebrulee"), cond.Args[1])
}

func TestSearchCondition_MultipleSecrets(t *testing.T) {
	d := newTestDigester(t,
		WithSecret("v2", testSecret("v2")),
		WithSecret("v1", testSecret("v1")),
	)

	cond := d.SearchCondition("name", "alice", 3)

	require.Equal(t,
		"(secret_id = $3 AND name_digest = $4) OR (secret_id = $5 AND name_digest = $6)",
		cond.SQL)
	require.Len(t, cond.Args, 4)
	require.Equal(t, "v1", cond.Args[0])
	require.Equal(t, "v2", cond.Args[2])
	require.Len(t, strings.Split(cond.SQL, " OR "), 2)
}

func TestSearchCondition_EmptyKey(t *testing.T) {
	d := newTestDigester(t)

	cond := d.SearchCondition("name", " !! ", 1)
	require.Equal(t, "FALSE", cond.SQL)
	require.Nil(t, cond.Args)
}

func TestSearchCondition_InvalidColumn(t *testing.T) {
	d := newTestDigester(t)

	for _, col := range []string{"", "1name", "name; DROP TABLE x", "na-me", "name "} {
		t.Run(col, func(t *testing.T) {
			require.Panics(t, func() { d.SearchCondition(col, "alice", 1) })
		})
	}
}

func TestSearchCondition_ValidColumns(t *testing.T) {
	d := newTestDigester(t)
	for _, col := range []string{"name", "_name", "Name2", "first_name"} {
		require.NotPanics(t, func() { d.SearchCondition(col, "alice", 1) })
	}
}

func TestSearchCondition_InvalidOffset(t *testing.T) {
	d := newTestDigester(t)

	require.Panics(t, func() { d.SearchCondition("name", "alice", 0) })
	require.Panics(t, func() { d.SearchCondition("name", "alice", maxParamNumber+1) })
	require.Panics(t, func() { d.SearchCondition("name", "alice", maxParamNumber) })
}
