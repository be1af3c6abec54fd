package repository

import (
	"context"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	priceTableKind        = "price_table"
	priceTableLatestIndex = "kind-created_at-index"
)

type priceTableItem struct {
	ID           string                       `dynamodbav:"id"`
	Kind         string                       `dynamodbav:"kind"`
	Installation map[string]map[string]string `dynamodbav:"installation"`
	Cleaning     map[string]string            `dynamodbav:"cleaning"`
	Revision     int64                        `dynamodbav:"revision"`
	CreatedAt    string                       `dynamodbav:"created_at"`
	UpdatedAt    string                       `dynamodbav:"updated_at"`
}

// PriceTableDynamoRepository stores price table records.
//
// Table requirements:
//   - PK: id (string)
//   - GSI kind-created_at-index: PK kind (string), SK created_at (string)
//
// Every record carries the same kind so the GSI orders all of them by creation
// time; the latest record is the first item of a descending query.
type PriceTableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceTableRepository = (*PriceTableDynamoRepository)(nil)

func NewPriceTableDynamoRepository(ddb *dynamodb.Client, tableName string) *PriceTableDynamoRepository {
	return &PriceTableDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PriceTableDynamoRepository) GetLatest(ctx context.Context) (entities.PriceTable, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(priceTableLatestIndex),
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": "kind",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: priceTableKind},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.PriceTable{}, err
	}
	if len(out.Items) == 0 {
		return entities.PriceTable{}, nil
	}

	var head priceTableItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &head); err != nil {
		return entities.PriceTable{}, err
	}

	// GSI reads are eventually consistent; fetch the record itself consistently.
	got, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", head.ID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceTable{}, err
	}
	if len(got.Item) == 0 {
		return fromPriceTableItem(head), nil
	}

	var it priceTableItem
	if err := attributevalue.UnmarshalMap(got.Item, &it); err != nil {
		return entities.PriceTable{}, err
	}
	return fromPriceTableItem(it), nil
}

func (r *PriceTableDynamoRepository) Save(ctx context.Context, t entities.PriceTable) (entities.PriceTable, error) {
	av, err := attributevalue.MarshalMap(toPriceTableItem(t))
	if err != nil {
		return entities.PriceTable{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PriceTable{}, err
	}
	return t, nil
}

func toPriceTableItem(t entities.PriceTable) priceTableItem {
	it := priceTableItem{
		ID:           t.ID,
		Kind:         priceTableKind,
		Installation: make(map[string]map[string]string, len(t.Installation)),
		Cleaning:     make(map[string]string, len(t.Cleaning)),
		Revision:     t.Revision,
		CreatedAt:    formatTime(t.CreatedAt),
		UpdatedAt:    formatTime(t.UpdatedAt),
	}
	for cat, byCap := range t.Installation {
		inner := make(map[string]string, len(byCap))
		for c, v := range byCap {
			inner[c.String()] = v
		}
		it.Installation[string(cat)] = inner
	}
	for cat, v := range t.Cleaning {
		it.Cleaning[string(cat)] = v
	}
	return it
}

func fromPriceTableItem(it priceTableItem) entities.PriceTable {
	t := entities.PriceTable{
		ID:           it.ID,
		Installation: make(map[entities.EquipmentCategory]map[entities.Capacity]string, len(it.Installation)),
		Cleaning:     make(map[entities.EquipmentCategory]string, len(it.Cleaning)),
		Revision:     it.Revision,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	for cat, byCap := range it.Installation {
		inner := make(map[entities.Capacity]string, len(byCap))
		for c, v := range byCap {
			capacity, ok := entities.ParseCapacity(c)
			if !ok {
				continue
			}
			inner[capacity] = v
		}
		t.Installation[entities.EquipmentCategory(cat)] = inner
	}
	for cat, v := range it.Cleaning {
		t.Cleaning[entities.EquipmentCategory(cat)] = v
	}
	return t
}
