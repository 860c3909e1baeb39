package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "quote_sequences"

// SequenceDynamoRepository implements the per-company, per-year quote counter
// on a DynamoDB atomic ADD.
//
// Table requirements:
//   - PK: id (string, "<company_id>#<year>")
//
// The item holds a single last_issued number. ADD creates it on first use, so
// a fresh company/year starts issuing at 1 without any setup write.

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, companyID string, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: sequenceID(companyID, year)},
		},
		UpdateExpression: aws.String("ADD #last_issued :one"),
		ExpressionAttributeNames: map[string]string{
			"#last_issued": "last_issued",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["last_issued"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %s: counter attribute is not a number", sequenceID(companyID, year))
	}
	return strconv.ParseInt(attr.Value, 10, 64)
}

func (r *SequenceDynamoRepository) EnsureAtLeast(ctx context.Context, companyID string, year int, floor int64) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: sequenceID(companyID, year)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#last_issued) OR #last_issued < :floor"),
		UpdateExpression:    aws.String("SET #last_issued = :floor"),
		ExpressionAttributeNames: map[string]string{
			"#last_issued": "last_issued",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":floor": &types.AttributeValueMemberN{Value: strconv.FormatInt(floor, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Counter is already past the floor.
			return nil
		}
		return err
	}
	return nil
}

func sequenceID(companyID string, year int) string {
	return fmt.Sprintf("%s#%d", companyID, year)
}
