package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewStoreFromDefaultConfig creates a Store using the default AWS credential
// and region resolution chain (environment, shared config, IMDS).
//
// Example:
//
//	store, err := s3.NewStoreFromDefaultConfig(ctx, "my-vector-bucket", "",
//	    config.WithRegion("us-east-1"),
//	)
func NewStoreFromDefaultConfig(ctx context.Context, bucket, rootPrefix string, optFns ...func(*config.LoadOptions) error) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, rootPrefix), nil
}
