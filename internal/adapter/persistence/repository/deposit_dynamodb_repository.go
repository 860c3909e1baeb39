package repository

import (
	"context"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositsTableName = "deposits"
	depositsQuoteIDIndex     = "quote_id-index"
)

type depositItem struct {
	ID           string                 `dynamodbav:"id"`
	QuoteID      string                 `dynamodbav:"quote_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// DepositDynamoRepository persists Deposit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type DepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb *dynamodb.Client) *DepositDynamoRepository {
	return &DepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
	}
}

func (r *DepositDynamoRepository) Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error) {
	av, err := attributevalue.MarshalMap(toDepositItem(d))
	if err != nil {
		return entities.Deposit{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Deposit{}, err
	}
	return d, nil
}

func (r *DepositDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deposit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deposit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deposit{}, nil
	}

	var it depositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deposit{}, err
	}
	return fromDepositItem(it), nil
}

func (r *DepositDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Deposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Deposit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositItem(it))
	}
	return items, nil
}

func toDepositItem(d entities.Deposit) depositItem {
	return depositItem{
		ID:           d.ID,
		QuoteID:      d.QuoteID,
		Amount:       d.Amount.String(),
		Date:         d.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(d.Status),
		MPPayload:    d.MPPayload,
		MPPayloadRaw: string(d.MPPayloadRaw),
	}
}

func fromDepositItem(it depositItem) entities.Deposit {
	return entities.Deposit{
		ID:           it.ID,
		QuoteID:      it.QuoteID,
		Amount:       decimalFromString(it.Amount),
		Date:         timeFromString(it.Date),
		Status:       entities.DepositStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
