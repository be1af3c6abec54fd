package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const materialReferenceIndex = "material_id-index"

type orderItem struct {
	ID                string             `dynamodbav:"id"`
	CustomerID        string             `dynamodbav:"customer_id"`
	CustomerName      string             `dynamodbav:"customer_name"`
	CustomerPhone     string             `dynamodbav:"customer_phone,omitempty"`
	ServiceType       string             `dynamodbav:"service_type,omitempty"`
	EquipmentCategory string             `dynamodbav:"equipment_category,omitempty"`
	Capacity          int                `dynamodbav:"capacity,omitempty"`
	Address           string             `dynamodbav:"address,omitempty"`
	Latitude          *float64           `dynamodbav:"latitude,omitempty"`
	Longitude         *float64           `dynamodbav:"longitude,omitempty"`
	Notes             string             `dynamodbav:"notes,omitempty"`
	Services          []orderServiceItem `dynamodbav:"services"`
	MaterialsTotal    string             `dynamodbav:"materials_total"`
	ServicesTotal     string             `dynamodbav:"services_total"`
	Subtotal          string             `dynamodbav:"subtotal"`
	Discount          string             `dynamodbav:"discount"`
	Total             string             `dynamodbav:"total"`
	Status            string             `dynamodbav:"status"`
	CreatedAt         string             `dynamodbav:"created_at"`
	UpdatedAt         string             `dynamodbav:"updated_at"`
}

type orderServiceItem struct {
	Position    int    `dynamodbav:"position"`
	Type        string `dynamodbav:"type"`
	Category    string `dynamodbav:"category,omitempty"`
	Capacity    int    `dynamodbav:"capacity,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
	Value       string `dynamodbav:"value,omitempty"`
	Amount      string `dynamodbav:"amount"`
}

type orderMaterialItem struct {
	OrderID    string `dynamodbav:"order_id"`
	Position   int    `dynamodbav:"position"`
	ID         string `dynamodbav:"id"`
	MaterialID string `dynamodbav:"material_id"`
	Name       string `dynamodbav:"name"`
	Unit       string `dynamodbav:"unit"`
	UnitPrice  string `dynamodbav:"unit_price"`
	Quantity   int    `dynamodbav:"quantity"`
	LineTotal  string `dynamodbav:"line_total"`
}

// OrderDynamoRepository persists orders in two tables and puts new customers in
// a third.
//
// Table requirements:
//   - orders: PK id (string). Service lines are embedded in the order item.
//   - order_materials: PK order_id (string), SK position (number),
//     GSI material_id-index: PK material_id (string)
//   - customers: PK id (string)
//
// The order item, a new customer and the material lines are written in one
// TransactWriteItems (100 actions at most, see pricing.MaxMaterialLines).
type OrderDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	materialsTableName string
	customersTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName, materialsTableName, customersTableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:                ddb,
		tableName:          tableName,
		materialsTableName: materialsTableName,
		customersTableName: customersTableName,
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order, newCustomer *entities.Customer) (entities.Order, error) {
	items, err := r.createItems(o, newCustomer)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) createItems(o entities.Order, newCustomer *entities.Customer) ([]types.TransactWriteItem, error) {
	if len(o.Materials) > pricing.MaxMaterialLines {
		return nil, pricing.ErrTooManyMaterialLines
	}

	header, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return nil, err
	}

	items := make([]types.TransactWriteItem, 0, len(o.Materials)+2)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     header,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	})
	if newCustomer != nil {
		av, err := attributevalue.MarshalMap(toCustomerItem(*newCustomer))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.customersTableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}
	for _, l := range o.Materials {
		av, err := attributevalue.MarshalMap(toOrderMaterialItem(l))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.materialsTableName), Item: av},
		})
	}
	return items, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	o := fromOrderItem(it)

	o.Materials, err = r.materialLines(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) materialLines(ctx context.Context, orderID string) ([]entities.OrderMaterialLine, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.materialsTableName),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})

	lines := []entities.OrderMaterialLine{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []orderMaterialItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			lines = append(lines, fromOrderMaterialItem(it))
		}
	}
	return lines, nil
}

// List scans both tables and attaches the material lines to their orders.
func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	byOrder := map[string][]entities.OrderMaterialLine{}
	mp := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.materialsTableName)})
	for mp.HasMorePages() {
		page, err := mp.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []orderMaterialItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			byOrder[it.OrderID] = append(byOrder[it.OrderID], fromOrderMaterialItem(it))
		}
	}

	var out []entities.Order
	op := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for op.HasMorePages() {
		page, err := op.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			o := fromOrderItem(it)
			lines := byOrder[o.ID]
			sort.Slice(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })
			o.Materials = lines
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	o, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || o.ID == "" {
		return o, err
	}

	o.Materials, err = r.materialLines(ctx, o.ID)
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	updateExpr, values, names := build(formatTime(time.Now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// CountMaterialReferences counts persisted material lines pointing at materialID.
func (r *OrderDynamoRepository) CountMaterialReferences(ctx context.Context, materialID string) (int, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.materialsTableName),
		IndexName:              aws.String(materialReferenceIndex),
		KeyConditionExpression: aws.String("#material_id = :material_id"),
		ExpressionAttributeNames: map[string]string{
			"#material_id": "material_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":material_id": &types.AttributeValueMemberS{Value: materialID},
		},
		Select: types.SelectCount,
	})

	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		CustomerName:      o.CustomerName,
		CustomerPhone:     o.CustomerPhone,
		ServiceType:       string(o.ServiceType),
		EquipmentCategory: string(o.EquipmentCategory),
		Capacity:          int(o.Capacity),
		Address:           o.Address,
		Latitude:          o.Latitude,
		Longitude:         o.Longitude,
		Notes:             o.Notes,
		Services:          make([]orderServiceItem, 0, len(o.Services)),
		MaterialsTotal:    formatDecimal(o.MaterialsTotal),
		ServicesTotal:     formatDecimal(o.ServicesTotal),
		Subtotal:          formatDecimal(o.Subtotal),
		Discount:          formatDecimal(o.Discount),
		Total:             formatDecimal(o.Total),
		Status:            string(o.Status),
		CreatedAt:         formatTime(o.CreatedAt),
		UpdatedAt:         formatTime(o.UpdatedAt),
	}
	for _, l := range o.Services {
		it.Services = append(it.Services, orderServiceItem{
			Position:    l.Position,
			Type:        string(l.Type),
			Category:    string(l.Category),
			Capacity:    int(l.Capacity),
			Description: l.Description,
			Value:       l.Value,
			Amount:      formatDecimal(l.Amount),
		})
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:                it.ID,
		CustomerID:        it.CustomerID,
		CustomerName:      it.CustomerName,
		CustomerPhone:     it.CustomerPhone,
		ServiceType:       entities.ServiceType(it.ServiceType),
		EquipmentCategory: entities.EquipmentCategory(it.EquipmentCategory),
		Capacity:          entities.Capacity(it.Capacity),
		Address:           it.Address,
		Latitude:          it.Latitude,
		Longitude:         it.Longitude,
		Notes:             it.Notes,
		Services:          make([]entities.OrderServiceLine, 0, len(it.Services)),
		Materials:         []entities.OrderMaterialLine{},
		MaterialsTotal:    parseDecimal(it.MaterialsTotal),
		ServicesTotal:     parseDecimal(it.ServicesTotal),
		Subtotal:          parseDecimal(it.Subtotal),
		Discount:          parseDecimal(it.Discount),
		Total:             parseDecimal(it.Total),
		Status:            entities.OrderStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	for _, l := range it.Services {
		o.Services = append(o.Services, entities.OrderServiceLine{
			Position:    l.Position,
			Type:        entities.ServiceType(l.Type),
			Category:    entities.EquipmentCategory(l.Category),
			Capacity:    entities.Capacity(l.Capacity),
			Description: l.Description,
			Value:       l.Value,
			Amount:      parseDecimal(l.Amount),
		})
	}
	return o
}

func toOrderMaterialItem(l entities.OrderMaterialLine) orderMaterialItem {
	return orderMaterialItem{
		OrderID:    l.OrderID,
		Position:   l.Position,
		ID:         l.ID,
		MaterialID: l.MaterialID,
		Name:       l.Name,
		Unit:       l.Unit,
		UnitPrice:  formatDecimal(l.UnitPrice),
		Quantity:   l.Quantity,
		LineTotal:  formatDecimal(l.LineTotal),
	}
}

func fromOrderMaterialItem(it orderMaterialItem) entities.OrderMaterialLine {
	return entities.OrderMaterialLine{
		ID:         it.ID,
		OrderID:    it.OrderID,
		Position:   it.Position,
		MaterialID: it.MaterialID,
		Name:       it.Name,
		Unit:       it.Unit,
		UnitPrice:  parseDecimal(it.UnitPrice),
		Quantity:   it.Quantity,
		LineTotal:  parseDecimal(it.LineTotal),
	}
}
