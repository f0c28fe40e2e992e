package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/blobvec/blobvec/objstore"
)

// Client is the interface for DynamoDB operations used by the store.
// It is satisfied by *dynamodb.Client and by test doubles.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store implements objstore.Store on a DynamoDB table.
type Store struct {
	client     Client
	tableName  string
	collection string // partition key value for all items of this store
}

// NewStore creates a DynamoDB object store.
// collection is the partition key value shared by all objects of this store.
func NewStore(client Client, tableName, collection string) *Store {
	return &Store{
		client:     client,
		tableName:  tableName,
		collection: collection,
	}
}

func (s *Store) itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"collection": &types.AttributeValueMemberS{Value: s.collection},
		"object_key": &types.AttributeValueMemberS{Value: key},
	}
}

// Put implements objstore.Store.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	item := map[string]types.AttributeValue{
		"collection": &types.AttributeValueMemberS{Value: s.collection},
		"object_key": &types.AttributeValueMemberS{Value: key},
		"body":       &types.AttributeValueMemberB{Value: data},
	}
	if contentType != "" {
		item["content_type"] = &types.AttributeValueMemberS{Value: contentType}
	}

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	return err
}

// Get implements objstore.Store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.itemKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if resp.Item == nil {
		return nil, objstore.ErrNotFound
	}

	body, ok := resp.Item["body"].(*types.AttributeValueMemberB)
	if !ok {
		return nil, objstore.ErrNotFound
	}
	return body.Value, nil
}

// List implements objstore.Store.
// DynamoDB returns sort keys in lexicographic order, so no extra sort is needed.
func (s *Store) List(ctx context.Context, prefix string, maxKeys int) ([]string, error) {
	var keys []string
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			ProjectionExpression:   aws.String("object_key"),
			ExclusiveStartKey:      startKey,
			KeyConditionExpression: aws.String("#c = :collection"),
			ExpressionAttributeNames: map[string]string{
				"#c": "collection",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":collection": &types.AttributeValueMemberS{Value: s.collection},
			},
		}
		if prefix != "" {
			input.KeyConditionExpression = aws.String("#c = :collection AND begins_with(#k, :prefix)")
			input.ExpressionAttributeNames["#k"] = "object_key"
			input.ExpressionAttributeValues[":prefix"] = &types.AttributeValueMemberS{Value: prefix}
		}
		if maxKeys > 0 {
			remaining := maxKeys - len(keys)
			input.Limit = aws.Int32(int32(remaining))
		}

		resp, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			if attr, ok := item["object_key"].(*types.AttributeValueMemberS); ok {
				keys = append(keys, attr.Value)
			}
		}

		if maxKeys > 0 && len(keys) >= maxKeys {
			keys = keys[:maxKeys]
			break
		}
		if resp.LastEvaluatedKey == nil {
			break
		}
		startKey = resp.LastEvaluatedKey
	}

	return keys, nil
}

// Delete implements objstore.Store.
// DynamoDB DeleteItem is idempotent: deleting a missing key succeeds.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.itemKey(key),
	})
	return err
}
