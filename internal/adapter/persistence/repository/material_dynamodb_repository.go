package repository

import (
	"context"
	"errors"
	"sort"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type materialItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Unit      string `dynamodbav:"unit"`
	Price     string `dynamodbav:"price"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// MaterialDynamoRepository persists the material catalog.
//
// Table requirements:
//   - PK: id (string)
type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client, tableName string) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{ddb: ddb, tableName: tableName}
}

// List returns the catalog sorted by name.
func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.Material, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	var out []entities.Material
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []materialItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromMaterialItem(it))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, material entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(material))
	if err != nil {
		return entities.Material{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Material{}, err
	}
	return material, nil
}

// Update overwrites the editable fields. A missing id yields a zero Material.
func (r *MaterialDynamoRepository) Update(ctx context.Context, material entities.Material) (entities.Material, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", material.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #unit = :unit, #price = :price, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: material.Name},
			":unit":       &types.AttributeValueMemberS{Value: material.Unit},
			":price":      &types.AttributeValueMemberS{Value: formatDecimal(material.Price)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(material.UpdatedAt)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#name":       "name",
			"#unit":       "unit",
			"#price":      "price",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Material{}, nil
		}
		return entities.Material{}, err
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	})
	return err
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:        m.ID,
		Name:      m.Name,
		Unit:      m.Unit,
		Price:     formatDecimal(m.Price),
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	return entities.Material{
		ID:        it.ID,
		Name:      it.Name,
		Unit:      it.Unit,
		Price:     parseDecimal(it.Price),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
