// Package minio provides an objstore.Store backed by MinIO or any
// S3-compatible object storage, using the native minio-go client.
//
// Use this backend for self-hosted deployments; the s3 package covers AWS.
package minio
