package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"brightcover/internal/domain/entities"
	"brightcover/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quote_requests"

type vehicleItem struct {
	Make     string `dynamodbav:"make"`
	Model    string `dynamodbav:"model"`
	Year     int    `dynamodbav:"year"`
	FuelType string `dynamodbav:"fuel_type"`
}

type quoteItem struct {
	ID        string `dynamodbav:"id"`
	Reference string `dynamodbav:"reference"`

	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone"`
	Age       int    `dynamodbav:"age"`

	Product         string       `dynamodbav:"product"`
	PlanType        string       `dynamodbav:"plan_type"`
	CoverageAmount  int64        `dynamodbav:"coverage_amount"`
	PolicyTermYears int          `dynamodbav:"policy_term_years"`
	FamilySize      int          `dynamodbav:"family_size"`
	Vehicle         *vehicleItem `dynamodbav:"vehicle,omitempty"`

	Smoker         bool `dynamodbav:"smoker"`
	MedicalHistory bool `dynamodbav:"medical_history"`
	CityTier       int  `dynamodbav:"city_tier"`

	Requirements string `dynamodbav:"requirements"`

	EstimatedPremium int64 `dynamodbav:"estimated_premium"`
	MonthlyPremium   int64 `dynamodbav:"monthly_premium"`

	Status    string `dynamodbav:"status"`
	Notes     string `dynamodbav:"notes"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`

	SourceIP  string `dynamodbav:"source_ip"`
	UserAgent string `dynamodbav:"user_agent"`
}

// QuoteDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: reference (string)
//
// The reference doubles as the customer-facing id, so lookups by the value
// printed in the confirmation email are single GetItem calls. Admin listing
// scans with a filter; lead volume is low enough that a GSI is not worth
// its write amplification yet.

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

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#reference)"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context, filter entities.QuoteFilter) ([]entities.QuoteRequest, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	applyQuoteFilter(input, filter)

	var quotes []entities.QuoteRequest
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return paginate(quotes, filter.Offset, filter.Limit), nil
}

func applyQuoteFilter(input *dynamodb.ScanInput, filter entities.QuoteFilter) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if filter.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.Product != "" {
		conds = append(conds, "#product = :product")
		names["#product"] = "product"
		values[":product"] = &types.AttributeValueMemberS{Value: string(filter.Product)}
	}
	if !filter.From.IsZero() {
		conds = append(conds, "#created_at >= :from")
		names["#created_at"] = "created_at"
		values[":from"] = &types.AttributeValueMemberS{Value: filter.From.UTC().Format(time.RFC3339Nano)}
	}
	if !filter.To.IsZero() {
		conds = append(conds, "#created_at <= :to")
		names["#created_at"] = "created_at"
		values[":to"] = &types.AttributeValueMemberS{Value: filter.To.UTC().Format(time.RFC3339Nano)}
	}

	if len(conds) == 0 {
		return
	}
	input.FilterExpression = aws.String(strings.Join(conds, " AND "))
	input.ExpressionAttributeNames = names
	input.ExpressionAttributeValues = values
}

func (r *QuoteDynamoRepository) UpdateStatusByReference(ctx context.Context, reference string, status entities.QuoteStatus, notes string) (entities.QuoteRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if notes != "" {
		expr += ", #notes = :notes"
		values[":notes"] = &types.AttributeValueMemberS{Value: notes}
		names["#notes"] = "notes"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConditionExpression:       aws.String("attribute_exists(#reference)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#reference": "reference"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteRequest{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Summary(ctx context.Context) (entities.QuoteSummary, error) {
	summary := entities.QuoteSummary{
		ByStatus:  map[entities.QuoteStatus]int64{},
		ByProduct: map[entities.ProductType]int64{},
	}

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#status, #product"),
		ExpressionAttributeNames: map[string]string{
			"#status":  "status",
			"#product": "product",
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return entities.QuoteSummary{}, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return entities.QuoteSummary{}, err
		}
		for _, it := range items {
			summary.Total++
			summary.ByStatus[entities.QuoteStatus(it.Status)]++
			summary.ByProduct[entities.ProductType(it.Product)]++
		}
	}
	return summary, nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func toQuoteItem(q entities.QuoteRequest) quoteItem {
	it := quoteItem{
		ID:               q.ID,
		Reference:        q.Reference,
		FirstName:        q.FirstName,
		LastName:         q.LastName,
		Email:            q.Email,
		Phone:            q.Phone,
		Age:              q.Age,
		Product:          string(q.Product),
		PlanType:         q.PlanType,
		CoverageAmount:   q.CoverageAmount,
		PolicyTermYears:  q.PolicyTermYears,
		FamilySize:       q.FamilySize,
		Smoker:           q.Smoker,
		MedicalHistory:   q.MedicalHistory,
		CityTier:         q.CityTier,
		Requirements:     q.Requirements,
		EstimatedPremium: q.EstimatedPremium,
		MonthlyPremium:   q.MonthlyPremium,
		Status:           string(q.Status),
		Notes:            q.Notes,
		CreatedAt:        q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		SourceIP:         q.SourceIP,
		UserAgent:        q.UserAgent,
	}
	if q.Vehicle != nil {
		it.Vehicle = &vehicleItem{
			Make:     q.Vehicle.Make,
			Model:    q.Vehicle.Model,
			Year:     q.Vehicle.Year,
			FuelType: q.Vehicle.FuelType,
		}
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.QuoteRequest {
	createdAt := parseTimestamp(it.Reference, "created_at", it.CreatedAt)
	updatedAt := parseTimestamp(it.Reference, "updated_at", it.UpdatedAt)
	q := entities.QuoteRequest{
		ID:               it.ID,
		Reference:        it.Reference,
		FirstName:        it.FirstName,
		LastName:         it.LastName,
		Email:            it.Email,
		Phone:            it.Phone,
		Age:              it.Age,
		Product:          entities.ProductType(it.Product),
		PlanType:         it.PlanType,
		CoverageAmount:   it.CoverageAmount,
		PolicyTermYears:  it.PolicyTermYears,
		FamilySize:       it.FamilySize,
		Smoker:           it.Smoker,
		MedicalHistory:   it.MedicalHistory,
		CityTier:         it.CityTier,
		Requirements:     it.Requirements,
		EstimatedPremium: it.EstimatedPremium,
		MonthlyPremium:   it.MonthlyPremium,
		Status:           entities.QuoteStatus(it.Status),
		Notes:            it.Notes,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
		SourceIP:         it.SourceIP,
		UserAgent:        it.UserAgent,
	}
	if it.Vehicle != nil {
		q.Vehicle = &entities.VehicleInfo{
			Make:     it.Vehicle.Make,
			Model:    it.Vehicle.Model,
			Year:     it.Vehicle.Year,
			FuelType: it.Vehicle.FuelType,
		}
	}
	return q
}
