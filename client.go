package blobvec

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blobvec/blobvec/codec"
	"github.com/blobvec/blobvec/compress"
	"github.com/blobvec/blobvec/distance"
	"github.com/blobvec/blobvec/model"
	"github.com/blobvec/blobvec/objstore"
)

// Key naming defaults: records live under "<prefix><id><suffix>".
const (
	DefaultKeyPrefix = "vectors/"
	DefaultKeySuffix = ".json"
)

// Client performs brute-force similarity search over vector records persisted
// as individual objects in a key-addressed store.
//
// The client is stateless apart from its configuration: every operation is a
// direct round trip to the store, with no caching. All methods are safe for
// concurrent use as long as the underlying store is.
type Client struct {
	store            objstore.Store
	codec            codec.Codec
	compressor       compress.Compressor
	dimension        int
	keyPrefix        string
	keySuffix        string
	requestTimeout   time.Duration
	logger           *Logger
	metricsCollector MetricsCollector
}

// New creates a Client over the given store.
// dimension is the fixed vector dimensionality of the collection; every
// inserted record and every query must match it.
func New(store objstore.Store, dimension int, optFns ...Option) (*Client, error) {
	if store == nil {
		return nil, errors.New("store must not be nil")
	}
	if dimension <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}

	o := applyOptions(optFns)

	return &Client{
		store:            store,
		codec:            o.codec,
		compressor:       o.compressor,
		dimension:        dimension,
		keyPrefix:        o.keyPrefix,
		keySuffix:        o.keySuffix,
		requestTimeout:   o.requestTimeout,
		logger:           o.logger,
		metricsCollector: o.metricsCollector,
	}, nil
}

// Dimension returns the collection's fixed vector dimensionality.
func (c *Client) Dimension() int {
	return c.dimension
}

func (c *Client) key(id string) string {
	return c.keyPrefix + id + c.keySuffix
}

// idFromKey recovers a record id from a storage key by stripping the given
// prefix and the configured suffix. Keys that do not match the convention
// yield ok=false and are excluded from listings.
func (c *Client) idFromKey(key, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok {
		return "", false
	}
	id, ok := strings.CutSuffix(rest, c.keySuffix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// opCtx derives a per-request context honoring the configured timeout.
func (c *Client) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.requestTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.requestTimeout)
}

// Insert stores a single record. The record is immutable once stored; to
// update it, delete and insert again.
func (c *Client) Insert(ctx context.Context, rec model.Record) error {
	start := time.Now()
	err := c.insert(ctx, rec)
	c.metricsCollector.RecordInsert(time.Since(start), err)
	c.logger.LogInsert(ctx, rec.ID, len(rec.Vector), err)
	return err
}

func (c *Client) insert(ctx context.Context, rec model.Record) error {
	if rec.ID == "" {
		return ErrEmptyID
	}
	if len(rec.Vector) != c.dimension {
		return &distance.ErrDimensionMismatch{Expected: c.dimension, Actual: len(rec.Vector)}
	}

	data, err := c.codec.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", rec.ID, err)
	}
	data, err = c.compressor.Compress(data)
	if err != nil {
		return fmt.Errorf("compress record %q: %w", rec.ID, err)
	}

	opctx, cancel := c.opCtx(ctx)
	defer cancel()

	return c.store.Put(opctx, c.key(rec.ID), data, c.compressor.ContentType())
}

// ItemError records a single failed insertion within a batch.
type ItemError struct {
	// Index is the item's position in the submitted batch.
	Index int
	// ID is the record id, if any.
	ID string
	// Err is the failure cause.
	Err error
}

// BatchResult reports the outcome of a batch insertion.
type BatchResult struct {
	// Inserted is the number of records stored successfully.
	Inserted int
	// Failed lists the records that could not be stored.
	Failed []ItemError
}

// BatchInsert stores records sequentially, continuing past individual
// failures. A failed item never aborts the batch and its error is not
// re-raised; it is reported in the returned BatchResult only. There is no
// atomicity or rollback: a partially completed batch is expected.
func (c *Client) BatchInsert(ctx context.Context, records []model.Record) *BatchResult {
	start := time.Now()
	result := &BatchResult{}

	for i, rec := range records {
		if err := c.Insert(ctx, rec); err != nil {
			result.Failed = append(result.Failed, ItemError{Index: i, ID: rec.ID, Err: err})
			continue
		}
		result.Inserted++
	}

	c.metricsCollector.RecordBatchInsert(len(records), len(result.Failed), time.Since(start))
	c.logger.LogBatchInsert(ctx, len(records), len(result.Failed))
	return result
}

// Get retrieves a record by id. Returns ErrNotFound if no such record exists.
func (c *Client) Get(ctx context.Context, id string) (*model.Record, error) {
	start := time.Now()
	rec, err := c.get(ctx, id)
	c.metricsCollector.RecordGet(time.Since(start), err)
	return rec, err
}

func (c *Client) get(ctx context.Context, id string) (*model.Record, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	opctx, cancel := c.opCtx(ctx)
	defer cancel()

	data, err := c.store.Get(opctx, c.key(id))
	if err != nil {
		if errors.Is(err, objstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return nil, err
	}

	return c.decodeRecord(data, c.key(id))
}

func (c *Client) decodeRecord(data []byte, key string) (*model.Record, error) {
	data, err := c.compressor.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("malformed record at %q: %w", key, err)
	}

	var rec model.Record
	if err := c.codec.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("malformed record at %q: %w", key, err)
	}
	return &rec, nil
}

// Delete removes a record by id. Idempotent: deleting a non-existent id is
// not an error.
func (c *Client) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := c.delete(ctx, id)
	c.metricsCollector.RecordDelete(time.Since(start), err)
	c.logger.LogDelete(ctx, id, err)
	return err
}

func (c *Client) delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	opctx, cancel := c.opCtx(ctx)
	defer cancel()

	err := c.store.Delete(opctx, c.key(id))
	if errors.Is(err, objstore.ErrNotFound) {
		return nil
	}
	return err
}

// ListIDs returns up to maxCount record ids stored under the given key
// prefix, in enumeration order. An empty prefix means the client's configured
// prefix. Keys that do not follow the "<prefix><id><suffix>" convention are
// silently excluded. maxCount <= 0 means no limit.
func (c *Client) ListIDs(ctx context.Context, prefix string, maxCount int) ([]string, error) {
	start := time.Now()
	ids, err := c.listIDs(ctx, prefix, maxCount)
	c.metricsCollector.RecordList(time.Since(start), err)
	return ids, err
}

func (c *Client) listIDs(ctx context.Context, prefix string, maxCount int) ([]string, error) {
	if prefix == "" {
		prefix = c.keyPrefix
	}

	opctx, cancel := c.opCtx(ctx)
	defer cancel()

	keys, err := c.store.List(opctx, prefix, maxCount)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		if id, ok := c.idFromKey(key, prefix); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
