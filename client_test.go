package blobvec_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blobvec/blobvec"
	"github.com/blobvec/blobvec/compress"
	"github.com/blobvec/blobvec/distance"
	"github.com/blobvec/blobvec/model"
	"github.com/blobvec/blobvec/objstore"
)

// faultStore wraps a Store and fails Put for selected keys.
type faultStore struct {
	objstore.Store
	failPut map[string]bool
}

func (f *faultStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if f.failPut[key] {
		return errors.New("store unavailable")
	}
	return f.Store.Put(ctx, key, data, contentType)
}

func newTestClient(t *testing.T, dimension int, optFns ...blobvec.Option) (*blobvec.Client, *objstore.Memory) {
	t.Helper()
	store := objstore.NewMemory()
	client, err := blobvec.New(store, dimension, optFns...)
	require.NoError(t, err)
	return client, store
}

func TestNew_Validation(t *testing.T) {
	_, err := blobvec.New(nil, 2)
	require.Error(t, err)

	_, err = blobvec.New(objstore.NewMemory(), 0)
	require.Error(t, err)
	var id *blobvec.ErrInvalidDimension
	require.ErrorAs(t, err, &id)
	assert.Equal(t, 0, id.Dimension)
}

func TestInsertGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t, 3)

	rec := model.Record{
		ID:     "doc_001",
		Vector: []float32{0.1, 0.2, 0.3},
		Metadata: map[string]any{
			"title":  "Document 1",
			"nested": map[string]any{"category": "tech"},
		},
	}
	require.NoError(t, client.Insert(ctx, rec))

	got, err := client.Get(ctx, "doc_001")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Vector, got.Vector)
	assert.Equal(t, rec.Metadata, got.Metadata)
}

func TestInsert_Validation(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t, 2)

	err := client.Insert(ctx, model.Record{ID: "", Vector: []float32{1, 0}})
	require.ErrorIs(t, err, blobvec.ErrEmptyID)

	err = client.Insert(ctx, model.Record{ID: "a", Vector: []float32{1, 0, 0}})
	var dm *distance.ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t, 2)

	_, err := client.Get(ctx, "missing")
	require.ErrorIs(t, err, blobvec.ErrNotFound)
}

func TestDelete_Idempotent(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t, 2)

	require.NoError(t, client.Insert(ctx, model.Record{ID: "a", Vector: []float32{1, 0}}))
	require.NoError(t, client.Delete(ctx, "a"))

	_, err := client.Get(ctx, "a")
	require.ErrorIs(t, err, blobvec.ErrNotFound)

	// Deleting again is not an error.
	require.NoError(t, client.Delete(ctx, "a"))
}

func TestBatchInsert_ContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	store := &faultStore{
		Store:   objstore.NewMemory(),
		failPut: map[string]bool{"vectors/item3.json": true},
	}
	client, err := blobvec.New(store, 2)
	require.NoError(t, err)

	records := make([]model.Record, 5)
	for i := range records {
		records[i] = model.Record{ID: fmt.Sprintf("item%d", i+1), Vector: []float32{1, 0}}
	}

	result := client.BatchInsert(ctx, records)
	assert.Equal(t, 4, result.Inserted)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, 2, result.Failed[0].Index)
	assert.Equal(t, "item3", result.Failed[0].ID)
	require.Error(t, result.Failed[0].Err)

	// Surviving items are independently retrievable.
	for _, id := range []string{"item1", "item2", "item4", "item5"} {
		_, err := client.Get(ctx, id)
		require.NoError(t, err, id)
	}
	_, err = client.Get(ctx, "item3")
	require.ErrorIs(t, err, blobvec.ErrNotFound)
}

func TestListIDs(t *testing.T) {
	ctx := context.Background()
	client, store := newTestClient(t, 2)

	require.NoError(t, client.Insert(ctx, model.Record{ID: "a", Vector: []float32{1, 0}}))
	require.NoError(t, client.Insert(ctx, model.Record{ID: "b", Vector: []float32{0, 1}}))

	// Keys outside the prefix or suffix convention are excluded.
	require.NoError(t, store.Put(ctx, "other/c.json", []byte("{}"), ""))
	require.NoError(t, store.Put(ctx, "vectors/readme.txt", []byte("x"), ""))

	ids, err := client.ListIDs(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	ids, err = client.ListIDs(ctx, "", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)

	ids, err = client.ListIDs(ctx, "other/", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids)
}

func TestClient_KeyConvention(t *testing.T) {
	ctx := context.Background()
	client, store := newTestClient(t, 2)

	require.NoError(t, client.Insert(ctx, model.Record{ID: "doc_001", Vector: []float32{1, 0}}))

	_, err := store.Get(ctx, "vectors/doc_001.json")
	require.NoError(t, err)
}

func TestClient_CustomPrefixSuffix(t *testing.T) {
	ctx := context.Background()
	client, store := newTestClient(t, 2,
		blobvec.WithKeyPrefix("embeddings/"),
		blobvec.WithKeySuffix(".vec"),
	)

	require.NoError(t, client.Insert(ctx, model.Record{ID: "a", Vector: []float32{1, 0}}))

	_, err := store.Get(ctx, "embeddings/a.vec")
	require.NoError(t, err)

	ids, err := client.ListIDs(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}

func TestClient_WithCompression(t *testing.T) {
	ctx := context.Background()

	for _, comp := range []compress.Compressor{compress.NewLZ4(), compress.NewZstd()} {
		client, _ := newTestClient(t, 3, blobvec.WithCompression(comp))

		rec := model.Record{
			ID:       "doc_001",
			Vector:   []float32{0.1, 0.2, 0.3},
			Metadata: map[string]any{"title": "Document 1"},
		}
		require.NoError(t, client.Insert(ctx, rec), comp.Name())

		got, err := client.Get(ctx, "doc_001")
		require.NoError(t, err, comp.Name())
		assert.Equal(t, rec.Vector, got.Vector, comp.Name())
		assert.Equal(t, rec.Metadata, got.Metadata, comp.Name())

		result, err := client.Search(ctx, []float32{0.1, 0.2, 0.3}, 1)
		require.NoError(t, err, comp.Name())
		require.Len(t, result.Results, 1, comp.Name())
		assert.InDelta(t, 1.0, result.Results[0].Score, 1e-6, comp.Name())
	}
}

func TestClient_Metrics(t *testing.T) {
	ctx := context.Background()
	metrics := &blobvec.BasicMetricsCollector{}
	client, _ := newTestClient(t, 2, blobvec.WithMetricsCollector(metrics))

	require.NoError(t, client.Insert(ctx, model.Record{ID: "a", Vector: []float32{1, 0}}))
	_, err := client.Search(ctx, []float32{1, 0}, 1)
	require.NoError(t, err)
	require.NoError(t, client.Delete(ctx, "a"))

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.InsertCount)
	assert.Equal(t, int64(1), stats.SearchCount)
	assert.Equal(t, int64(1), stats.DeleteCount)
	assert.Zero(t, stats.InsertErrors)
	assert.Zero(t, stats.SearchErrors)
}
