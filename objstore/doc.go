// Package objstore abstracts the key-addressed object store that holds
// serialized vector records.
//
// The core treats the store as an opaque key-value collection: whole-object
// put/get/list/delete, one request per operation. Backends for S3, MinIO and
// DynamoDB live in subpackages; Memory and Local are provided here for tests
// and local development.
//
// Every backend returns List results in lexicographic key order so that
// search enumeration order, and with it tie-breaking, is deterministic.
package objstore
