package health

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type postgresChecker struct {
	db Pinger
}

// Postgres checks the pool with a ping.
func Postgres(db Pinger) Checker {
	return postgresChecker{db: db}
}

func (c postgresChecker) Name() string { return "postgres" }

func (c postgresChecker) Check(ctx context.Context) error {
	return c.db.Ping(ctx)
}

// TableDescriber is satisfied by *dynamodb.Client.
type TableDescriber interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type dynamoChecker struct {
	db    TableDescriber
	table string
}

// DynamoDB checks that the table exists and is ACTIVE.
func DynamoDB(db TableDescriber, table string) Checker {
	return dynamoChecker{db: db, table: table}
}

func (c dynamoChecker) Name() string { return "dynamodb" }

func (c dynamoChecker) Check(ctx context.Context) error {
	out, err := c.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(c.table)})
	if err != nil {
		return err
	}
	if out.Table == nil || out.Table.TableStatus != types.TableStatusActive {
		status := types.TableStatus("")
		if out.Table != nil {
			status = out.Table.TableStatus
		}
		return fmt.Errorf("table %s is %q", c.table, status)
	}
	return nil
}
