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
	defaultStatusLogsTableName = "status_change_logs"
	statusLogsQuoteIDIndex     = "quote_id-index"
)

type statusChangeLogItem struct {
	ID             string `dynamodbav:"id"`
	QuoteID        string `dynamodbav:"quote_id"`
	PreviousStatus string `dynamodbav:"previous_status"`
	NewStatus      string `dynamodbav:"new_status"`
	ActorID        string `dynamodbav:"actor_id"`
	Notes          string `dynamodbav:"notes,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// StatusLogDynamoRepository persists the workflow audit trail in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id, SK: created_at)
//
// The index sort key gives ListByQuoteID its chronological order for free.

type StatusLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatusLogRepository = (*StatusLogDynamoRepository)(nil)

func NewStatusLogDynamoRepository(ddb *dynamodb.Client) *StatusLogDynamoRepository {
	return &StatusLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATUS_LOGS_TABLE", defaultStatusLogsTableName),
	}
}

func (r *StatusLogDynamoRepository) Append(ctx context.Context, log entities.StatusChangeLog) (entities.StatusChangeLog, error) {
	av, err := attributevalue.MarshalMap(toStatusChangeLogItem(log))
	if err != nil {
		return entities.StatusChangeLog{}, err
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
		return entities.StatusChangeLog{}, err
	}
	return log, nil
}

func (r *StatusLogDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.StatusChangeLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(statusLogsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	logs := make([]entities.StatusChangeLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it statusChangeLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		logs = append(logs, fromStatusChangeLogItem(it))
	}
	return logs, nil
}

func toStatusChangeLogItem(l entities.StatusChangeLog) statusChangeLogItem {
	return statusChangeLogItem{
		ID:             l.ID,
		QuoteID:        l.QuoteID,
		PreviousStatus: string(l.PreviousStatus),
		NewStatus:      string(l.NewStatus),
		ActorID:        l.ActorID,
		Notes:          l.Notes,
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromStatusChangeLogItem(it statusChangeLogItem) entities.StatusChangeLog {
	return entities.StatusChangeLog{
		ID:             it.ID,
		QuoteID:        it.QuoteID,
		PreviousStatus: entities.QuoteStatus(it.PreviousStatus),
		NewStatus:      entities.QuoteStatus(it.NewStatus),
		ActorID:        it.ActorID,
		Notes:          it.Notes,
		CreatedAt:      timeFromString(it.CreatedAt),
	}
}
