package searchkey

import (
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestIndex() *Index {
	x := NewIndex(NormalizeSearchArabic)
	x.Add("1", "Crème Brûlée recipe")
	x.Add("2", "Crème caramel")
	x.Add("3", "أحمد محمود")
	x.Add("4", "Room ١٢٨, second floor")
	return x
}

func TestIndex_Lookup(t *testing.T) {
	x := newTestIndex()

	tests := []struct {
		query    string
		expected []string
	}{
		{"creme", []string{"1", "2"}},
		{"CRÈME brulee", []string{"1"}},
		{"caramel", []string{"2"}},
		{"احمد", []string{"3"}},
		{"إحمد", []string{"3"}},
		{"128", []string{"4"}},
		{"creme chocolate", nil},
		{"", nil},
		{"!!!", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			require.Equal(t, tt.expected, x.Lookup(tt.query))
		})
	}
}

func TestIndex_AddReplaces(t *testing.T) {
	x := newTestIndex()
	x.Add("1", "tarte tatin")

	require.Equal(t, []string{"2"}, x.Lookup("creme"))
	require.Equal(t, []string{"1"}, x.Lookup("tatin"))
	require.Equal(t, 4, x.Len())
}

func TestIndex_Remove(t *testing.T) {
	x := newTestIndex()

	require.True(t, x.Remove("2"))
	require.False(t, x.Remove("2"))
	require.Nil(t, x.Lookup("caramel"))
	require.Equal(t, []string{"1"}, x.Lookup("creme"))
	require.Equal(t, 3, x.Len())
	require.NotContains(t, x.postings, "caramel")
}

func TestIndex_NilNormalizer(t *testing.T) {
	x := NewIndex(nil)
	x.Add("a", "Crème")
	require.Equal(t, []string{"a"}, x.Lookup("creme"))
}

func TestIndex_SnapshotRoundTrip(t *testing.T) {
	x := newTestIndex()

	data, err := x.MarshalBinary()
	require.NoError(t, err)

	y := NewIndex(NormalizeSearchArabic)
	y.Add("stale", "should disappear")
	require.NoError(t, y.UnmarshalBinary(data))

	require.Equal(t, x.Len(), y.Len())
	require.Equal(t, []string{"1", "2"}, y.Lookup("creme"))
	require.Equal(t, []string{"3"}, y.Lookup("أحمد"))
	require.Nil(t, y.Lookup("stale"))
}

func TestIndex_SnapshotCompressed(t *testing.T) {
	x := NewIndex(nil)
	for i := 0; i < 500; i++ {
		x.Add(strconv.Itoa(i), fmt.Sprintf("document number %d about creme brulee", i))
	}

	data, err := x.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, flagZstd, data[1])

	var y Index
	require.NoError(t, y.UnmarshalBinary(data))
	require.Len(t, y.Lookup("brulee"), 500)
	require.Equal(t, []string{"42"}, y.Lookup("number 42"))
}

func TestIndex_UnmarshalInvalid(t *testing.T) {
	x := NewIndex(nil)
	require.ErrorIs(t, x.UnmarshalBinary([]byte{0x01}), ErrInvalidFormat)
	require.ErrorIs(t, x.UnmarshalBinary([]byte{0x09, 0x00, 0x00}), ErrUnsupportedVersion)
	require.ErrorIs(t, x.UnmarshalBinary([]byte{snapshotVersion, flagNoCompression, 0xff, 0x00}), ErrInvalidFormat)
}

func TestIndex_Concurrent(t *testing.T) {
	x := NewIndex(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				x.Add(fmt.Sprintf("%d-%d", i, j), "shared word")
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = x.Lookup("shared")
				_ = x.Len()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 800, x.Len())
	require.Len(t, x.Lookup("shared word"), 800)
}
