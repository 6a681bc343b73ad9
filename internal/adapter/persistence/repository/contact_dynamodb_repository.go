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

const defaultContactsTableName = "contact_messages"

type contactItem struct {
	ID        string `dynamodbav:"id"`
	Reference string `dynamodbav:"reference"`

	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Phone   string `dynamodbav:"phone"`
	Subject string `dynamodbav:"subject"`
	Message string `dynamodbav:"message"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`

	SourceIP  string `dynamodbav:"source_ip"`
	UserAgent string `dynamodbav:"user_agent"`
}

// ContactDynamoRepository persists ContactMessage entities in DynamoDB.
//
// Table requirements:
//   - PK: reference (string)

type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb *dynamodb.Client) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACTS_TABLE", defaultContactsTableName),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	it := toContactItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContactMessage{}, err
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
		return entities.ContactMessage{}, err
	}
	return m, nil
}

func (r *ContactDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.ContactMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContactMessage{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContactMessage{}, nil
	}

	var it contactItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContactMessage{}, err
	}
	return fromContactItem(it), nil
}

func (r *ContactDynamoRepository) List(ctx context.Context, filter entities.ContactFilter) ([]entities.ContactMessage, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	applyContactFilter(input, filter)

	var msgs []entities.ContactMessage
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []contactItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			msgs = append(msgs, fromContactItem(it))
		}
	}

	sort.Slice(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
	})
	return paginate(msgs, filter.Offset, filter.Limit), nil
}

func applyContactFilter(input *dynamodb.ScanInput, filter entities.ContactFilter) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if filter.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
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

func (r *ContactDynamoRepository) UpdateStatusByReference(ctx context.Context, reference string, status entities.ContactStatus) (entities.ContactMessage, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConditionExpression: aws.String("attribute_exists(#reference)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#reference":  "reference",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContactMessage{}, nil
		}
		return entities.ContactMessage{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ContactMessage{}, nil
	}
	var it contactItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ContactMessage{}, err
	}
	return fromContactItem(it), nil
}

func toContactItem(m entities.ContactMessage) contactItem {
	return contactItem{
		ID:        m.ID,
		Reference: m.Reference,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: m.UpdatedAt.UTC().Format(time.RFC3339Nano),
		SourceIP:  m.SourceIP,
		UserAgent: m.UserAgent,
	}
}

func fromContactItem(it contactItem) entities.ContactMessage {
	createdAt := parseTimestamp(it.Reference, "created_at", it.CreatedAt)
	updatedAt := parseTimestamp(it.Reference, "updated_at", it.UpdatedAt)
	return entities.ContactMessage{
		ID:        it.ID,
		Reference: it.Reference,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Subject:   it.Subject,
		Message:   it.Message,
		Status:    entities.ContactStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		SourceIP:  it.SourceIP,
		UserAgent: it.UserAgent,
	}
}
