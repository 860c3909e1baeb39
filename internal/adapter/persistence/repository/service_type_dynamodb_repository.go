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

const defaultServiceTypesTableName = "service_types"

type serviceTypeItem struct {
	ID                      string `dynamodbav:"id"`
	CompanyID               string `dynamodbav:"company_id"`
	Name                    string `dynamodbav:"name"`
	SKU                     string `dynamodbav:"sku"`
	Category                string `dynamodbav:"category"`
	DefaultLaborMinutes     int    `dynamodbav:"default_labor_minutes"`
	DefaultMetalType        string `dynamodbav:"default_metal_type,omitempty"`
	DefaultMetalWeightGrams string `dynamodbav:"default_metal_weight_grams"`
	BaseCost                string `dynamodbav:"base_cost"`
	BaseRetail              string `dynamodbav:"base_retail"`
	LaborRole               string `dynamodbav:"labor_role,omitempty"`
	PricingRuleID           string `dynamodbav:"pricing_rule_id,omitempty"`
	IsGenericSKU            bool   `dynamodbav:"is_generic_sku"`
	RequiresPartnerCheck    bool   `dynamodbav:"requires_partner_check"`
	SupportsRush            bool   `dynamodbav:"supports_rush"`
	Version                 int    `dynamodbav:"version"`
	Active                  bool   `dynamodbav:"active"`
	CreatedAt               string `dynamodbav:"created_at"`
}

// ServiceTypeDynamoRepository reads the service catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Catalog entries are written by the back-office loader, never by this
// service, so eventually consistent reads are fine here.

type ServiceTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceTypeRepository = (*ServiceTypeDynamoRepository)(nil)

func NewServiceTypeDynamoRepository(ddb *dynamodb.Client) *ServiceTypeDynamoRepository {
	return &ServiceTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_TYPES_TABLE", defaultServiceTypesTableName),
	}
}

func (r *ServiceTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ServiceType{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceType{}, nil
	}

	var it serviceTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceType{}, err
	}
	return fromServiceTypeItem(it), nil
}

func fromServiceTypeItem(it serviceTypeItem) entities.ServiceType {
	return entities.ServiceType{
		ID:                      it.ID,
		CompanyID:               it.CompanyID,
		Name:                    it.Name,
		SKU:                     it.SKU,
		Category:                entities.ServiceCategory(it.Category),
		DefaultLaborMinutes:     it.DefaultLaborMinutes,
		DefaultMetalType:        entities.MetalType(it.DefaultMetalType),
		DefaultMetalWeightGrams: decimalFromString(it.DefaultMetalWeightGrams),
		BaseCost:                decimalFromString(it.BaseCost),
		BaseRetail:              decimalFromString(it.BaseRetail),
		LaborRole:               entities.LaborRole(it.LaborRole),
		PricingRuleID:           it.PricingRuleID,
		IsGenericSKU:            it.IsGenericSKU,
		RequiresPartnerCheck:    it.RequiresPartnerCheck,
		SupportsRush:            it.SupportsRush,
		Version:                 it.Version,
		Active:                  it.Active,
		CreatedAt:               timeFromString(it.CreatedAt),
	}
}
