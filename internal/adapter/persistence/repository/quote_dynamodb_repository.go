package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesCompanyIDIndex   = "company_id-index"
)

type quoteLineItemItem struct {
	ID                   string `dynamodbav:"id"`
	ServiceTypeID        string `dynamodbav:"service_type_id"`
	Description          string `dynamodbav:"description,omitempty"`
	MetalType            string `dynamodbav:"metal_type,omitempty"`
	MetalWeightGrams     string `dynamodbav:"metal_weight_grams"`
	LaborMinutes         int    `dynamodbav:"labor_minutes"`
	BaseCost             string `dynamodbav:"base_cost"`
	BaseRetail           string `dynamodbav:"base_retail"`
	CalculatedRetail     string `dynamodbav:"calculated_retail"`
	ManualOverrideRetail string `dynamodbav:"manual_override_retail,omitempty"`
	IsRush               bool   `dynamodbav:"is_rush"`
	RushMultiplier       string `dynamodbav:"rush_multiplier"`
	CreatedAt            string `dynamodbav:"created_at"`
}

type quoteItem struct {
	ID              string `dynamodbav:"id"`
	CompanyID       string `dynamodbav:"company_id"`
	StoreID         string `dynamodbav:"store_id,omitempty"`
	GuestID         string `dynamodbav:"guest_id"`
	Status          string `dynamodbav:"status"`
	Priority        string `dynamodbav:"priority"`
	ServiceCategory string `dynamodbav:"service_category"`
	RushType        string `dynamodbav:"rush_type"`

	Subtotal              string `dynamodbav:"subtotal"`
	TaxRate               string `dynamodbav:"tax_rate"`
	Tax                   string `dynamodbav:"tax"`
	Total                 string `dynamodbav:"total"`
	RushMultiplierApplied string `dynamodbav:"rush_multiplier_applied"`
	PricingVersion        string `dynamodbav:"pricing_version,omitempty"`

	ApprovalRequired bool   `dynamodbav:"approval_required"`
	EstimateApproved bool   `dynamodbav:"estimate_approved"`
	PromisedDueDate  string `dynamodbav:"promised_due_date,omitempty"`
	ValidUntil       string `dynamodbav:"valid_until"`

	LineItems []quoteLineItemItem `dynamodbav:"line_items"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string, canonical quote ID, e.g. Q-2026-000123)
//   - GSI: company_id-index (PK: company_id, SK: id)
//
// Line items live inside the quote item, so a quote is always read and
// written as one unit. Every mutation is conditioned on the version the
// caller read; a lost race comes back as the zero Quote with a nil error.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Another writer holds this ID, either a create race or a quote
			// imported from the legacy system. The caller draws a fresh ID.
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// HighestQuoteID returns the largest ID issued for the company in the given
// year, or "" when the year has no quotes. The numeric part is zero padded,
// so the descending index order is also the numeric order.
func (r *QuoteDynamoRepository) HighestQuoteID(ctx context.Context, companyID string, year int) (string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid AND begins_with(#id, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":    &types.AttributeValueMemberS{Value: companyID},
			":prefix": &types.AttributeValueMemberS{Value: fmt.Sprintf("Q-%d-", year)},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return "", err
	}
	return it.ID, nil
}

func (r *QuoteDynamoRepository) UpdateWorkflow(ctx context.Context, id string, expectedVersion int64, patch entities.WorkflowPatch) (entities.Quote, error) {
	return r.update(ctx, id, expectedVersion, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #priority = :priority, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(patch.Status)},
			":priority":   &types.AttributeValueMemberS{Value: string(patch.Priority)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#priority":   "priority",
			"#updated_at": "updated_at",
		}
		if patch.PromisedDueDate != nil {
			expr += ", #promised_due_date = :promised_due_date"
			vals[":promised_due_date"] = &types.AttributeValueMemberS{Value: patch.PromisedDueDate.UTC().Format(time.RFC3339Nano)}
			names["#promised_due_date"] = "promised_due_date"
		}
		if patch.EstimateApproved != nil {
			expr += ", #estimate_approved = :estimate_approved"
			vals[":estimate_approved"] = &types.AttributeValueMemberBOOL{Value: *patch.EstimateApproved}
			names["#estimate_approved"] = "estimate_approved"
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) SaveLineItems(ctx context.Context, id string, expectedVersion int64, items []entities.QuoteLineItem, totals entities.QuoteTotals) (entities.Quote, error) {
	list, err := attributevalue.Marshal(toQuoteLineItemItems(items))
	if err != nil {
		return entities.Quote{}, err
	}

	return r.update(ctx, id, expectedVersion, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr, vals, names := totalsExpression(totals, now)
		expr += ", #line_items = :line_items"
		vals[":line_items"] = list
		names["#line_items"] = "line_items"
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdateTotals(ctx context.Context, id string, expectedVersion int64, totals entities.QuoteTotals) (entities.Quote, error) {
	return r.update(ctx, id, expectedVersion, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		return totalsExpression(totals, now)
	})
}

// update applies a version-guarded write. The expression fragments come from
// the build callback; the version bump and the guard itself are appended here
// so no writer can forget them.
func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	expectedVersion int64,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	updateExpr += ", #version = :next_version"
	values[":next_version"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)}
	values[":expected_version"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected_version"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#version": "version"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func totalsExpression(t entities.QuoteTotals, now string) (string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #subtotal = :subtotal, #tax_rate = :tax_rate, #tax = :tax, #total = :total, " +
		"#rush_multiplier_applied = :rush_multiplier_applied, #pricing_version = :pricing_version, " +
		"#approval_required = :approval_required, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":subtotal":                &types.AttributeValueMemberS{Value: t.Subtotal.String()},
		":tax_rate":                &types.AttributeValueMemberS{Value: t.TaxRate.String()},
		":tax":                     &types.AttributeValueMemberS{Value: t.Tax.String()},
		":total":                   &types.AttributeValueMemberS{Value: t.Total.String()},
		":rush_multiplier_applied": &types.AttributeValueMemberS{Value: t.RushMultiplierApplied.String()},
		":pricing_version":         &types.AttributeValueMemberS{Value: t.PricingVersion},
		":approval_required":       &types.AttributeValueMemberBOOL{Value: t.ApprovalRequired},
		":updated_at":              &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#subtotal":                "subtotal",
		"#tax_rate":                "tax_rate",
		"#tax":                     "tax",
		"#total":                   "total",
		"#rush_multiplier_applied": "rush_multiplier_applied",
		"#pricing_version":         "pricing_version",
		"#approval_required":       "approval_required",
		"#updated_at":              "updated_at",
	}
	return expr, vals, names
}

func toQuoteItem(q entities.Quote) quoteItem {
	due := ""
	if q.PromisedDueDate != nil {
		due = q.PromisedDueDate.UTC().Format(time.RFC3339Nano)
	}
	return quoteItem{
		ID:              q.ID,
		CompanyID:       q.CompanyID,
		StoreID:         q.StoreID,
		GuestID:         q.GuestID,
		Status:          string(q.Status),
		Priority:        string(q.Priority),
		ServiceCategory: string(q.ServiceCategory),
		RushType:        string(q.RushType),

		Subtotal:              q.Subtotal.String(),
		TaxRate:               q.TaxRate.String(),
		Tax:                   q.Tax.String(),
		Total:                 q.Total.String(),
		RushMultiplierApplied: q.RushMultiplierApplied.String(),
		PricingVersion:        q.PricingVersion,

		ApprovalRequired: q.ApprovalRequired,
		EstimateApproved: q.EstimateApproved,
		PromisedDueDate:  due,
		ValidUntil:       q.ValidUntil.UTC().Format(time.RFC3339Nano),

		LineItems: toQuoteLineItemItems(q.LineItems),

		Version:   q.Version,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:              it.ID,
		CompanyID:       it.CompanyID,
		StoreID:         it.StoreID,
		GuestID:         it.GuestID,
		Status:          entities.QuoteStatus(it.Status),
		Priority:        entities.QuotePriority(it.Priority),
		ServiceCategory: entities.ServiceCategory(it.ServiceCategory),
		RushType:        entities.RushType(it.RushType),

		Subtotal:              decimalFromString(it.Subtotal),
		TaxRate:               decimalFromString(it.TaxRate),
		Tax:                   decimalFromString(it.Tax),
		Total:                 decimalFromString(it.Total),
		RushMultiplierApplied: decimalFromString(it.RushMultiplierApplied),
		PricingVersion:        it.PricingVersion,

		ApprovalRequired: it.ApprovalRequired,
		EstimateApproved: it.EstimateApproved,
		ValidUntil:       timeFromString(it.ValidUntil),

		LineItems: fromQuoteLineItemItems(it.LineItems),

		Version:   it.Version,
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
	if it.PromisedDueDate != "" {
		due := timeFromString(it.PromisedDueDate)
		q.PromisedDueDate = &due
	}
	return q
}

func toQuoteLineItemItems(items []entities.QuoteLineItem) []quoteLineItemItem {
	out := make([]quoteLineItemItem, 0, len(items))
	for _, li := range items {
		override := ""
		if li.ManualOverrideRetail != nil {
			override = li.ManualOverrideRetail.String()
		}
		out = append(out, quoteLineItemItem{
			ID:                   li.ID,
			ServiceTypeID:        li.ServiceTypeID,
			Description:          li.Description,
			MetalType:            string(li.MetalType),
			MetalWeightGrams:     li.MetalWeightGrams.String(),
			LaborMinutes:         li.LaborMinutes,
			BaseCost:             li.BaseCost.String(),
			BaseRetail:           li.BaseRetail.String(),
			CalculatedRetail:     li.CalculatedRetail.String(),
			ManualOverrideRetail: override,
			IsRush:               li.IsRush,
			RushMultiplier:       li.RushMultiplier.String(),
			CreatedAt:            li.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return out
}

func fromQuoteLineItemItems(items []quoteLineItemItem) []entities.QuoteLineItem {
	out := make([]entities.QuoteLineItem, 0, len(items))
	for _, it := range items {
		li := entities.QuoteLineItem{
			ID:               it.ID,
			ServiceTypeID:    it.ServiceTypeID,
			Description:      it.Description,
			MetalType:        entities.MetalType(it.MetalType),
			MetalWeightGrams: decimalFromString(it.MetalWeightGrams),
			LaborMinutes:     it.LaborMinutes,
			BaseCost:         decimalFromString(it.BaseCost),
			BaseRetail:       decimalFromString(it.BaseRetail),
			CalculatedRetail: decimalFromString(it.CalculatedRetail),
			IsRush:           it.IsRush,
			RushMultiplier:   decimalFromString(it.RushMultiplier),
			CreatedAt:        timeFromString(it.CreatedAt),
		}
		if it.ManualOverrideRetail != "" {
			override := decimalFromString(it.ManualOverrideRetail)
			li.ManualOverrideRetail = &override
		}
		out = append(out, li)
	}
	return out
}
