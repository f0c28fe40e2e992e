// Package s3 provides an objstore.Store backed by Amazon S3 using aws-sdk-go-v2.
//
// Keys map 1:1 to object keys under an optional root prefix. List results are
// returned in lexicographic order, which S3 guarantees for ListObjectsV2.
package s3
