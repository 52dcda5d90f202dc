package dynamo

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"timeblock/internal/inbox"
	repo "timeblock/internal/inbox/repository"
)

// CreateItem stores a new Item and returns it.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inbox.Item, error) {
	now := time.Now().UnixMilli()
	rec := itemRecord{
		UserID:          opt.UserID,
		ID:              uuid.NewString(),
		Title:           opt.Title,
		Description:     opt.Description,
		DurationMinutes: opt.DurationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("CreateItem"), err)
		return inbox.Item{}, repo.ErrFailedToInsert
	}

	cond, err := r.buildCreateCondition()
	if err != nil {
		r.l.Errorf(ctx, "%s buildCreateCondition: %v", r.dsn("CreateItem"), err)
		return inbox.Item{}, repo.ErrFailedToInsert
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.table),
		Item:                      av,
		ConditionExpression:       cond.Condition(),
		ExpressionAttributeNames:  cond.Names(),
		ExpressionAttributeValues: cond.Values(),
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return inbox.Item{}, repo.ErrFailedToInsert
	}
	return rec.toItem(), nil
}

// GetOneItem fetches an Item by key.
// Returns zero-value Item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (inbox.Item, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            r.key(opt.UserID, opt.ID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return inbox.Item{}, repo.ErrFailedToGet
	}
	if len(out.Item) == 0 {
		return inbox.Item{}, nil
	}

	var rec itemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		r.l.Errorf(ctx, "%s unmarshal: %v", r.dsn("GetOneItem"), err)
		return inbox.Item{}, repo.ErrFailedToGet
	}
	return rec.toItem(), nil
}

// ListItems queries one user's partition, or scans the table when
// opt.UserID is empty.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]inbox.Item, error) {
	var (
		records []itemRecord
		err     error
	)
	if opt.UserID == "" {
		records, err = r.scan(ctx, opt)
	} else {
		records, err = r.query(ctx, opt)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	items := make([]inbox.Item, len(records))
	for i, rec := range records {
		items[i] = rec.toItem()
	}
	return items, nil
}

func (r *implRepository) query(ctx context.Context, opt repo.ListItemsOptions) ([]itemRecord, error) {
	expr, err := r.buildQueryExpression(opt)
	if err != nil {
		return nil, err
	}
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var records []itemRecord
	p := dynamodb.NewQueryPaginator(r.db, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []itemRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}
	return records, nil
}

func (r *implRepository) scan(ctx context.Context, opt repo.ListItemsOptions) ([]itemRecord, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.table)}
	if filter, ok := r.buildFilter(opt); ok {
		expr, err := expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return nil, err
		}
		in.FilterExpression = expr.Filter()
		in.ExpressionAttributeNames = expr.Names()
		in.ExpressionAttributeValues = expr.Values()
	}

	var records []itemRecord
	p := dynamodb.NewScanPaginator(r.db, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []itemRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}
	return records, nil
}

// UpdateItem overwrites the mutable attributes of an existing Item.
// Returns zero-value Item (ID == "") when the item no longer exists.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (inbox.Item, error) {
	expr, err := r.buildUpdateExpression(opt, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "%s buildUpdateExpression: %v", r.dsn("UpdateItem"), err)
		return inbox.Item{}, repo.ErrFailedToUpdate
	}

	out, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       r.key(opt.UserID, opt.ID),
		ConditionExpression:       expr.Condition(),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return inbox.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return inbox.Item{}, repo.ErrFailedToUpdate
	}

	var rec itemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		r.l.Errorf(ctx, "%s unmarshal: %v", r.dsn("UpdateItem"), err)
		return inbox.Item{}, repo.ErrFailedToUpdate
	}
	return rec.toItem(), nil
}

// DeleteItem removes an Item. Deleting a missing item is not an error.
func (r *implRepository) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(opt.UserID, opt.ID),
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
