// Package blobvec provides brute-force vector similarity search over records
// persisted as individual objects in a key-addressed blob store.
//
// Records are stored one object per vector under "<prefix><id>.json" and a
// search is an exhaustive scan: list the scope, retrieve each candidate, score
// it against the query with cosine similarity, and keep the top k. There is
// no index; the design trades throughput for operational simplicity and suits
// collections of hundreds to low thousands of records.
//
// Basic usage:
//
//	store := objstore.NewMemory() // or s3.NewStore, minio.NewStore, ...
//	client, err := blobvec.New(store, 384)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = client.Insert(ctx, model.Record{
//	    ID:       "doc_001",
//	    Vector:   embedding,
//	    Metadata: map[string]any{"title": "Document 1"},
//	})
//
//	result, err := client.Search(ctx, queryVector, 5)
//	for _, r := range result.Results {
//	    fmt.Println(r.ID, r.Score)
//	}
//
// Collection-wide operations (search, batch insert, listing) prefer partial
// results over total failure: individual item errors are skipped, logged and
// counted. Single-record operations surface their own failures directly.
package blobvec
