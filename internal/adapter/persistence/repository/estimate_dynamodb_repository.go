package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"electripro/internal/domain/entities"
	"electripro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID            string `dynamodbav:"id"`
	OwnerID       string `dynamodbav:"owner_id"`
	ProjectTitle  string `dynamodbav:"project_title"`
	ClientName    string `dynamodbav:"client_name"`
	ClientAddress string `dynamodbav:"client_address"`
	Brand         string `dynamodbav:"brand,omitempty"`
	Date          string `dynamodbav:"date"`
	Materials     string `dynamodbav:"materials"`
	Labor         string `dynamodbav:"labor"`
	TaxRate       string `dynamodbav:"tax_rate"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CurrencyCode  string `dynamodbav:"currency_code"`
	Status        string `dynamodbav:"status"`
	MaterialsCost string `dynamodbav:"materials_cost"`
	LaborCost     string `dynamodbav:"labor_cost"`
	Subtotal      string `dynamodbav:"subtotal"`
	TaxAmount     string `dynamodbav:"tax_amount"`
	GrandTotal    string `dynamodbav:"grand_total"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists estimate snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI (owner_id-index): owner_id
//
// Saves are whole-item PutItem calls on purpose: an estimate is committed as
// an atomic snapshot, never patched field by field. Line items travel as
// JSON documents inside the item and money values are stored as strings so
// no precision is lost in transit.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("owner_id-index"),
		KeyConditionExpression: aws.String("#owner_id = :owner_id"),
		ExpressionAttributeNames: map[string]string{
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	estimates := make([]entities.Estimate, 0, len(out.Items))
	for _, item := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		e, err := fromEstimateItem(it)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}

	// GSI queries return items in index order; the dashboard wants first-saved
	// first.
	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.Before(estimates[j].CreatedAt)
	})
	return estimates, nil
}

func (r *EstimateDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	materials, err := json.Marshal(e.Materials)
	if err != nil {
		return estimateItem{}, err
	}
	labor, err := json.Marshal(e.Labor)
	if err != nil {
		return estimateItem{}, err
	}

	return estimateItem{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		ProjectTitle:  e.ProjectTitle,
		ClientName:    e.ClientName,
		ClientAddress: e.ClientAddress,
		Brand:         e.Brand,
		Date:          e.Date,
		Materials:     string(materials),
		Labor:         string(labor),
		TaxRate:       floatToString(e.TaxRate),
		Notes:         e.Notes,
		CurrencyCode:  e.Currency.Code,
		Status:        string(e.Status),
		MaterialsCost: floatToString(e.Totals.MaterialsCost),
		LaborCost:     floatToString(e.Totals.LaborCost),
		Subtotal:      floatToString(e.Totals.Subtotal),
		TaxAmount:     floatToString(e.Totals.TaxAmount),
		GrandTotal:    floatToString(e.Totals.GrandTotal),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var materials []entities.MaterialLine
	if it.Materials != "" {
		if err := json.Unmarshal([]byte(it.Materials), &materials); err != nil {
			return entities.Estimate{}, err
		}
	}
	var labor []entities.LaborLine
	if it.Labor != "" {
		if err := json.Unmarshal([]byte(it.Labor), &labor); err != nil {
			return entities.Estimate{}, err
		}
	}

	currency, ok := entities.CurrencyByCode(it.CurrencyCode)
	if !ok {
		currency = entities.DefaultCurrency()
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	taxRate, _ := strconv.ParseFloat(it.TaxRate, 64)
	materialsCost, _ := strconv.ParseFloat(it.MaterialsCost, 64)
	laborCost, _ := strconv.ParseFloat(it.LaborCost, 64)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	taxAmount, _ := strconv.ParseFloat(it.TaxAmount, 64)
	grandTotal, _ := strconv.ParseFloat(it.GrandTotal, 64)

	return entities.Estimate{
		ID:            it.ID,
		OwnerID:       it.OwnerID,
		ProjectTitle:  it.ProjectTitle,
		ClientName:    it.ClientName,
		ClientAddress: it.ClientAddress,
		Brand:         it.Brand,
		Date:          it.Date,
		Materials:     materials,
		Labor:         labor,
		TaxRate:       taxRate,
		Notes:         it.Notes,
		Currency:      currency,
		Status:        entities.EstimateStatus(it.Status),
		Totals: entities.Totals{
			MaterialsCost: materialsCost,
			LaborCost:     laborCost,
			Subtotal:      subtotal,
			TaxAmount:     taxAmount,
			GrandTotal:    grandTotal,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
