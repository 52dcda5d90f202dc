package dynamo

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	dynamoCfg "timeblock/config/dynamo"
	repo "timeblock/internal/inbox/repository"
)

// buildQueryExpression selects the partition of one user and applies the filter of opt.
func (r *implRepository) buildQueryExpression(opt repo.ListItemsOptions) (expression.Expression, error) {
	b := expression.NewBuilder().
		WithKeyCondition(expression.Key(dynamoCfg.PartitionKey).Equal(expression.Value(opt.UserID)))
	if filter, ok := r.buildFilter(opt); ok {
		b = b.WithFilter(filter)
	}
	return b.Build()
}

// buildFilter returns the filter of opt, false when nothing filters.
func (r *implRepository) buildFilter(opt repo.ListItemsOptions) (expression.ConditionBuilder, bool) {
	var conds []expression.ConditionBuilder

	if opt.Done != nil {
		conds = append(conds, expression.Name("done").Equal(expression.Value(*opt.Done)))
	}

	if !opt.UpdatedBefore.IsZero() {
		conds = append(conds, expression.Name("updated_at").LessThan(expression.Value(opt.UpdatedBefore.UnixMilli())))
	}

	switch len(conds) {
	case 0:
		return expression.ConditionBuilder{}, false
	case 1:
		return conds[0], true
	default:
		return expression.And(conds[0], conds[1], conds[2:]...), true
	}
}

// buildUpdateExpression overwrites the mutable attributes of an existing item.
func (r *implRepository) buildUpdateExpression(opt repo.UpdateItemOptions, now time.Time) (expression.Expression, error) {
	update := expression.Set(expression.Name("title"), expression.Value(opt.Title)).
		Set(expression.Name("description"), expression.Value(opt.Description)).
		Set(expression.Name("duration_minutes"), expression.Value(opt.DurationMinutes)).
		Set(expression.Name("done"), expression.Value(opt.Done)).
		Set(expression.Name("updated_at"), expression.Value(now.UnixMilli()))

	return expression.NewBuilder().
		WithCondition(expression.AttributeExists(expression.Name(dynamoCfg.SortKey))).
		WithUpdate(update).
		Build()
}

// buildCreateCondition refuses to overwrite an existing item.
func (r *implRepository) buildCreateCondition() (expression.Expression, error) {
	return expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name(dynamoCfg.SortKey))).
		Build()
}

func (r *implRepository) key(userID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		dynamoCfg.PartitionKey: &types.AttributeValueMemberS{Value: userID},
		dynamoCfg.SortKey:      &types.AttributeValueMemberS{Value: id},
	}
}
