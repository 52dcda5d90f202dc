package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"timeblock/internal/inbox/repository"
	"timeblock/pkg/log"
)

// API is the subset of *dynamodb.Client the repository uses.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	dynamodb.QueryAPIClient
	dynamodb.ScanAPIClient
}

type implRepository struct {
	db    API
	table string
	l     log.Logger
}

// New creates a new DynamoDB-backed Repository for the inbox domain.
func New(db API, table string, l log.Logger) repository.Repository {
	if db == nil {
		panic("inbox/repository/dynamo: db is required")
	}
	return &implRepository{db: db, table: table, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inbox/repository/dynamo.%s", method)
}
