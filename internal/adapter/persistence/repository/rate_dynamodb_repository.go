package repository

import (
	"context"
	"fmt"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRatesTableName = "rates"

type rateItem struct {
	RateKey     string `dynamodbav:"rate_key"`
	EffectiveAt string `dynamodbav:"effective_at"`
	ID          string `dynamodbav:"id"`
	CompanyID   string `dynamodbav:"company_id"`
	MetalType   string `dynamodbav:"metal_type,omitempty"`
	Role        string `dynamodbav:"role,omitempty"`
	RatePerGram string `dynamodbav:"rate_per_gram,omitempty"`
	HourlyRate  string `dynamodbav:"hourly_rate,omitempty"`
	Active      bool   `dynamodbav:"active"`
}

// RateDynamoRepository reads market and labor rates from DynamoDB.
//
// Table requirements:
//   - PK: rate_key ("metal#<company_id>#<metal_type>" or "labor#<company_id>#<role>")
//   - SK: effective_at (RFC3339Nano)
//
// Metal and labor observations share one table; the rate_key prefix keeps the
// partitions apart. Rate history is append-only, loaded by the back-office
// feed.

type RateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateRepository = (*RateDynamoRepository)(nil)

func NewRateDynamoRepository(ddb *dynamodb.Client) *RateDynamoRepository {
	return &RateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATES_TABLE", defaultRatesTableName),
	}
}

func (r *RateDynamoRepository) LatestMetalRate(ctx context.Context, companyID string, metal entities.MetalType) (entities.MetalMarketRate, error) {
	it, err := r.latest(ctx, fmt.Sprintf("metal#%s#%s", companyID, metal))
	if err != nil || it.ID == "" {
		return entities.MetalMarketRate{}, err
	}
	return entities.MetalMarketRate{
		ID:          it.ID,
		CompanyID:   it.CompanyID,
		MetalType:   entities.MetalType(it.MetalType),
		RatePerGram: decimalFromString(it.RatePerGram),
		EffectiveAt: timeFromString(it.EffectiveAt),
		Active:      it.Active,
	}, nil
}

func (r *RateDynamoRepository) LatestLaborRate(ctx context.Context, companyID string, role entities.LaborRole) (entities.LaborRate, error) {
	it, err := r.latest(ctx, fmt.Sprintf("labor#%s#%s", companyID, role))
	if err != nil || it.ID == "" {
		return entities.LaborRate{}, err
	}
	return entities.LaborRate{
		ID:          it.ID,
		CompanyID:   it.CompanyID,
		Role:        entities.LaborRole(it.Role),
		HourlyRate:  decimalFromString(it.HourlyRate),
		EffectiveAt: timeFromString(it.EffectiveAt),
		Active:      it.Active,
	}, nil
}

// latest returns the newest active entry under the key, or the zero item when
// the key never had one. RFC3339Nano sorts chronologically, so the newest
// entry is the first item of a descending query.
func (r *RateDynamoRepository) latest(ctx context.Context, rateKey string) (rateItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("rate_key = :key"),
		FilterExpression:       aws.String("#active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key":  &types.AttributeValueMemberS{Value: rateKey},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return rateItem{}, err
	}
	if len(out.Items) == 0 {
		return rateItem{}, nil
	}

	var it rateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return rateItem{}, err
	}
	return it, nil
}
