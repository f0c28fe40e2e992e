package queue

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopK_RanksDescending(t *testing.T) {
	q := NewTopK(3)
	q.Push(Item{ID: "a", Score: 0.2, Seq: 0})
	q.Push(Item{ID: "b", Score: 0.9, Seq: 1})
	q.Push(Item{ID: "c", Score: 0.5, Seq: 2})
	q.Push(Item{ID: "d", Score: 0.7, Seq: 3})

	results := q.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "b", results[0].ID)
	assert.Equal(t, "d", results[1].ID)
	assert.Equal(t, "c", results[2].ID)
}

func TestTopK_FewerThanK(t *testing.T) {
	q := NewTopK(10)
	q.Push(Item{ID: "a", Score: 0.1, Seq: 0})
	q.Push(Item{ID: "b", Score: 0.3, Seq: 1})

	results := q.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[0].ID)
	assert.Equal(t, "a", results[1].ID)
}

func TestTopK_TieBreakByEnumerationOrder(t *testing.T) {
	q := NewTopK(2)
	// Pushed out of enumeration order on purpose.
	q.Push(Item{ID: "late", Score: 1.0, Seq: 5})
	q.Push(Item{ID: "early", Score: 1.0, Seq: 1})
	q.Push(Item{ID: "mid", Score: 1.0, Seq: 3})

	results := q.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "early", results[0].ID)
	assert.Equal(t, "mid", results[1].ID)
}

func TestTopK_MatchesFullSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const n, k = 200, 7
	items := make([]Item, n)
	q := NewTopK(k)
	for i := range items {
		// Coarse scores force plenty of ties.
		items[i] = Item{ID: string(rune('a' + i%26)), Score: float32(rng.Intn(10)) / 10, Seq: i}
		q.Push(items[i])
	}

	expected := append([]Item(nil), items...)
	sort.SliceStable(expected, func(i, j int) bool {
		return expected[i].Score > expected[j].Score
	})

	assert.Equal(t, expected[:k], q.Results())
}
