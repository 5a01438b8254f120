package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// PutItemAPI is the slice of the DynamoDB client the catalog needs.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoVideoStore implements VideoStore on a DynamoDB table.
type DynamoVideoStore struct {
	client    PutItemAPI
	tableName string
}

// Compile-time interface check.
var _ VideoStore = (*DynamoVideoStore)(nil)

// NewDynamoVideoStore creates a DynamoVideoStore for the given table.
// The client should be initialized from the shared AWS config.
func NewDynamoVideoStore(client PutItemAPI, tableName string) *DynamoVideoStore {
	return &DynamoVideoStore{
		client:    client,
		tableName: tableName,
	}
}

// TableName returns the table the store writes to.
func (s *DynamoVideoStore) TableName() string {
	return s.tableName
}

// PutVideo marshals video and writes it unconditionally.
func (s *DynamoVideoStore) PutVideo(ctx context.Context, video *Video) error {
	item, err := attributevalue.MarshalMap(video)
	if err != nil {
		return fmt.Errorf("marshal video %s: %w", video.ID, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem table=%s _id=%s: %w", s.tableName, video.ID, err)
	}

	log.Debug().Str("table", s.tableName).Str("videoId", video.VideoID).Msg("Video item written")
	return nil
}
