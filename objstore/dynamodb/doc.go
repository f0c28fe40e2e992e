// Package dynamodb provides an objstore.Store backed by a DynamoDB table.
//
// Table schema:
//   - Partition key: collection (string) - a fixed name per store instance
//   - Sort key: object_key (string) - the object key
//
// Prefix listing maps to a begins_with key condition on the sort key, which
// DynamoDB returns in lexicographic order. Object bodies live in a binary
// attribute; this fits the small per-record payloads of a vector collection
// (DynamoDB items are capped at 400KB).
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name blobvec-objects \
//	  --attribute-definitions AttributeName=collection,AttributeType=S AttributeName=object_key,AttributeType=S \
//	  --key-schema AttributeName=collection,KeyType=HASH AttributeName=object_key,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
package dynamodb
