package repository

import (
	"context"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPricingRulesTableName = "pricing_rules"
	pricingRulesCompanyIDIndex   = "company_id-index"
)

// Formula attributes keep the camelCase spelling of the records migrated from
// the previous system.
type pricingFormulaItem struct {
	MetalMarkupPercentage string `dynamodbav:"metalMarkupPercentage"`
	LaborMarkupPercentage string `dynamodbav:"laborMarkupPercentage"`
	FixedFee              string `dynamodbav:"fixedFee"`
	RushMultiplier        string `dynamodbav:"rushMultiplier"`
	MinimumCharge         string `dynamodbav:"minimumCharge,omitempty"`
}

type pricingRuleItem struct {
	ID        string             `dynamodbav:"id"`
	CompanyID string             `dynamodbav:"company_id"`
	Name      string             `dynamodbav:"name"`
	Formula   pricingFormulaItem `dynamodbav:"formula"`
	IsDefault bool               `dynamodbav:"is_default"`
	Active    bool               `dynamodbav:"active"`
	Version   string             `dynamodbav:"version"`
	CreatedAt string             `dynamodbav:"created_at"`
	UpdatedAt string             `dynamodbav:"updated_at"`
}

// PricingRuleDynamoRepository reads pricing rules from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)

type PricingRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingRuleRepository = (*PricingRuleDynamoRepository)(nil)

func NewPricingRuleDynamoRepository(ddb *dynamodb.Client) *PricingRuleDynamoRepository {
	return &PricingRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_RULES_TABLE", defaultPricingRulesTableName),
	}
}

func (r *PricingRuleDynamoRepository) GetByID(ctx context.Context, id string) (entities.PricingRule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.PricingRule{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingRule{}, nil
	}

	var it pricingRuleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingRule{}, err
	}
	return fromPricingRuleItem(it), nil
}

func (r *PricingRuleDynamoRepository) GetActiveDefault(ctx context.Context, companyID string) (entities.PricingRule, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pricingRulesCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		FilterExpression:       aws.String("is_default = :true AND #active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":  &types.AttributeValueMemberS{Value: companyID},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.PricingRule{}, err
	}
	if len(out.Items) == 0 {
		return entities.PricingRule{}, nil
	}

	var it pricingRuleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PricingRule{}, err
	}
	return fromPricingRuleItem(it), nil
}

func fromPricingRuleItem(it pricingRuleItem) entities.PricingRule {
	rule := entities.PricingRule{
		ID:        it.ID,
		CompanyID: it.CompanyID,
		Name:      it.Name,
		Formula: entities.PricingFormula{
			MetalMarkupPercentage: decimalFromString(it.Formula.MetalMarkupPercentage),
			LaborMarkupPercentage: decimalFromString(it.Formula.LaborMarkupPercentage),
			FixedFee:              decimalFromString(it.Formula.FixedFee),
			RushMultiplier:        decimalFromString(it.Formula.RushMultiplier),
		},
		IsDefault: it.IsDefault,
		Active:    it.Active,
		Version:   it.Version,
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
	if it.Formula.MinimumCharge != "" {
		minCharge := decimalFromString(it.Formula.MinimumCharge)
		rule.Formula.MinimumCharge = &minCharge
	}
	return rule
}
