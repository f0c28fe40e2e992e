package blobvec

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blobvec/blobvec/distance"
	"github.com/blobvec/blobvec/internal/queue"
	"github.com/blobvec/blobvec/model"
)

// SearchOptions controls the execution of a search query.
type SearchOptions struct {
	// Prefix restricts the scan to keys under this namespace.
	// Empty means the client's configured key prefix.
	Prefix string

	// Concurrency is the number of parallel candidate retrievals.
	// Values <= 1 keep the scan fully sequential. Parallel retrieval does not
	// affect result ordering: ranking ties always break by enumeration order.
	Concurrency int
}

// SearchResult is the envelope returned by Search.
type SearchResult struct {
	// Results holds at most k records ranked by descending score.
	Results []model.ScoredResult

	// Scanned is the number of keys enumerated under the scope prefix.
	Scanned int

	// Skipped is the number of candidates dropped due to retrieval or
	// parsing failures. Partial results are preferred over total failure;
	// each skip is also logged.
	Skipped int
}

// Search retrieves the k records most similar to query under the cosine
// metric, scanning every record under the scope prefix.
//
// The scan retrieves one object per candidate, so cost is dominated by
// retrieval latency times candidate count; this suits small-to-moderate
// collections, not a production index.
//
// Individual candidate failures are skipped and counted, never escalated.
// Only argument validation errors and a failed listing abort the search.
func (c *Client) Search(ctx context.Context, query []float32, k int, optFns ...func(*SearchOptions)) (*SearchResult, error) {
	start := time.Now()
	result, err := c.search(ctx, query, k, optFns...)

	c.metricsCollector.RecordSearch(k, time.Since(start), err)
	if result != nil {
		c.logger.LogSearch(ctx, k, result.Scanned, result.Skipped, len(result.Results), err)
	} else {
		c.logger.LogSearch(ctx, k, 0, 0, 0, err)
	}
	return result, err
}

func (c *Client) search(ctx context.Context, query []float32, k int, optFns ...func(*SearchOptions)) (*SearchResult, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(query) != c.dimension {
		return nil, &distance.ErrDimensionMismatch{Expected: c.dimension, Actual: len(query)}
	}

	opts := SearchOptions{
		Prefix:      c.keyPrefix,
		Concurrency: 1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.Prefix == "" {
		opts.Prefix = c.keyPrefix
	}

	listCtx, cancel := c.opCtx(ctx)
	keys, err := c.store.List(listCtx, opts.Prefix, 0)
	cancel()
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Scanned: len(keys)}
	if len(keys) == 0 {
		return result, nil
	}

	candidates := c.fetchCandidates(ctx, keys, opts.Concurrency)

	// Rank in enumeration order so ties stay deterministic.
	top := queue.NewTopK(k)
	for seq, rec := range candidates {
		if rec == nil {
			result.Skipped++
			continue
		}

		score, err := distance.Cosine(query, rec.Vector)
		if err != nil {
			// Candidate with the wrong dimensionality: a data error, not a
			// config error. Skip it and keep scanning.
			c.logger.LogCandidateSkipped(ctx, keys[seq], err)
			result.Skipped++
			continue
		}

		top.Push(queue.Item{ID: rec.ID, Score: score, Seq: seq})
	}

	for _, item := range top.Results() {
		rec := candidates[item.Seq]
		result.Results = append(result.Results, model.ScoredResult{
			ID:       item.ID,
			Score:    item.Score,
			Metadata: rec.Metadata,
			Vector:   rec.Vector,
		})
	}
	return result, nil
}

// fetchCandidates retrieves and decodes every key. The returned slice is
// index-aligned with keys; failed candidates are nil and already logged.
func (c *Client) fetchCandidates(ctx context.Context, keys []string, concurrency int) []*model.Record {
	candidates := make([]*model.Record, len(keys))

	if concurrency <= 1 {
		for i, key := range keys {
			candidates[i] = c.fetchCandidate(ctx, key)
		}
		return candidates
	}

	g := &errgroup.Group{}
	g.SetLimit(concurrency)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			candidates[i] = c.fetchCandidate(ctx, key)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures land as nil candidates

	return candidates
}

func (c *Client) fetchCandidate(ctx context.Context, key string) *model.Record {
	opctx, cancel := c.opCtx(ctx)
	defer cancel()

	data, err := c.store.Get(opctx, key)
	if err != nil {
		c.logger.LogCandidateSkipped(ctx, key, err)
		return nil
	}

	rec, err := c.decodeRecord(data, key)
	if err != nil {
		c.logger.LogCandidateSkipped(ctx, key, err)
		return nil
	}
	return rec
}
