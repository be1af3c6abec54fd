package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/infrastructure/metrics"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrCustomerNotFound   = errors.New("customer not found")
)

// SubmitInput is everything a submission needs besides the quotation itself.
// Latitude/Longitude are only used to fill a blank address.
type SubmitInput struct {
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	Address       string
	Latitude      *float64
	Longitude     *float64
	Notes         string
}

// IOrderUseCase persists quotations as orders and serves them back.
//
// Stored amounts are the ones computed at submission; documents and exports print
// them verbatim.
type IOrderUseCase interface {
	Submit(ctx context.Context, q *pricing.Quotation, in SubmitInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Document(ctx context.Context, id string) ([]byte, error)
	ExportSpreadsheet(ctx context.Context) ([]byte, error)
}

type OrderUseCase struct {
	orders     interfaces.IOrderRepository
	customers  interfaces.ICustomerRepository
	geo        interfaces.ILocationProvider
	renderer   interfaces.IDocumentRenderer
	exporter   interfaces.ISpreadsheetExporter
	geoTimeout time.Duration
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the order flow. geo may be nil, in which case addresses
// are never resolved from coordinates.
func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	customers interfaces.ICustomerRepository,
	geo interfaces.ILocationProvider,
	renderer interfaces.IDocumentRenderer,
	exporter interfaces.ISpreadsheetExporter,
	geoTimeout time.Duration,
) *OrderUseCase {
	if geoTimeout <= 0 {
		geoTimeout = 5 * time.Second
	}
	return &OrderUseCase{
		orders:     orders,
		customers:  customers,
		geo:        geo,
		renderer:   renderer,
		exporter:   exporter,
		geoTimeout: geoTimeout,
	}
}

func (u *OrderUseCase) Submit(ctx context.Context, q *pricing.Quotation, in SubmitInput) (entities.Order, error) {
	if q == nil {
		q = pricing.NewQuotation()
	}
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	log.Printf("[order][usecase] submit start customer_id=%q services=%d materials=%d", in.CustomerID, len(q.Services()), len(q.Materials()))

	if err := q.Validate(pricing.CustomerRef{ID: in.CustomerID, Name: in.CustomerName}); err != nil {
		log.Printf("[order][usecase] submit rejected err=%v", err)
		return entities.Order{}, err
	}

	customer, isNew, err := u.resolveCustomer(ctx, in)
	if err != nil {
		return entities.Order{}, err
	}
	var newCustomer *entities.Customer
	if isNew {
		newCustomer = &customer
	}

	address := strings.TrimSpace(in.Address)
	if address == "" {
		address = u.reverseGeocode(ctx, in.Latitude, in.Longitude)
	}

	now := time.Now().UTC()
	o := buildOrder(uuid.NewString(), q, customer, now)
	o.Address = address
	o.Latitude = in.Latitude
	o.Longitude = in.Longitude
	o.Notes = strings.TrimSpace(in.Notes)

	created, err := u.orders.Create(ctx, o, newCustomer)
	if err != nil {
		log.Printf("[order][usecase] persist failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}
	metrics.QuotationsSubmitted.Inc()
	log.Printf("[order][usecase] submit success order_id=%s total=%s", created.ID, created.Total.StringFixed(2))
	return created, nil
}

// resolveCustomer loads the referenced customer or builds a new one. A new
// customer is only stored together with the order.
func (u *OrderUseCase) resolveCustomer(ctx context.Context, in SubmitInput) (entities.Customer, bool, error) {
	if in.CustomerID != "" {
		c, err := u.customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return entities.Customer{}, false, err
		}
		if c.ID == "" {
			return entities.Customer{}, false, ErrCustomerNotFound
		}
		return c, false, nil
	}

	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      in.CustomerName,
		Phone:     strings.TrimSpace(in.CustomerPhone),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: time.Now().UTC(),
	}
	log.Printf("[order][usecase] new customer customer_id=%s", c.ID)
	return c, true, nil
}

// reverseGeocode is best effort: any failure leaves the address blank so the
// manual address (or none) is kept.
func (u *OrderUseCase) reverseGeocode(ctx context.Context, lat, lon *float64) string {
	if u.geo == nil || lat == nil || lon == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, u.geoTimeout)
	defer cancel()

	addr, err := u.geo.ReverseGeocode(ctx, *lat, *lon)
	if err != nil {
		log.Printf("[order][usecase] reverse geocode failed lat=%f lon=%f err=%v", *lat, *lon, err)
		return ""
	}
	return strings.TrimSpace(addr)
}

func buildOrder(id string, q *pricing.Quotation, customer entities.Customer, now time.Time) entities.Order {
	totals := q.Totals()
	o := entities.Order{
		ID:             id,
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		CustomerPhone:  customer.Phone,
		MaterialsTotal: totals.MaterialsTotal,
		ServicesTotal:  totals.ServicesTotal,
		Subtotal:       totals.Subtotal,
		Discount:       totals.Discount,
		Total:          totals.Total,
		Status:         entities.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	services := q.Services()
	if len(services) > 0 {
		o.ServiceType = services[0].Type
		o.EquipmentCategory = services[0].Category
		o.Capacity = services[0].Capacity
	}
	o.Services = lo.Map(services, func(l entities.ServiceLine, i int) entities.OrderServiceLine {
		return entities.OrderServiceLine{
			Position:    i + 1,
			Type:        l.Type,
			Category:    l.Category,
			Capacity:    l.Capacity,
			Description: strings.TrimSpace(l.Description),
			Value:       strings.TrimSpace(l.Value),
			Amount:      pricing.ServiceLineAmount(l),
		}
	})
	o.Materials = lo.Map(q.Materials(), func(l entities.MaterialLine, i int) entities.OrderMaterialLine {
		return entities.OrderMaterialLine{
			ID:         uuid.NewString(),
			OrderID:    id,
			Position:   i + 1,
			MaterialID: l.Material.ID,
			Name:       l.Material.Name,
			Unit:       l.Material.Unit,
			UnitPrice:  l.Material.Price,
			Quantity:   l.Quantity,
			LineTotal:  pricing.Round2(l.Material.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))),
		}
	})
	return o
}

// QuotationFromOrder loads a persisted order back into a fresh quotation. Material
// lines keep the unit price snapshotted at submission.
func QuotationFromOrder(o entities.Order) *pricing.Quotation {
	services := lo.Map(o.Services, func(l entities.OrderServiceLine, _ int) entities.ServiceLine {
		return entities.ServiceLine{
			Type:        l.Type,
			Category:    l.Category,
			Capacity:    l.Capacity,
			Description: l.Description,
			Value:       l.Value,
		}
	})
	materials := lo.Map(o.Materials, func(l entities.OrderMaterialLine, _ int) entities.MaterialLine {
		return entities.MaterialLine{
			Material: entities.Material{ID: l.MaterialID, Name: l.Name, Unit: l.Unit, Price: l.UnitPrice},
			Quantity: l.Quantity,
		}
	})
	return pricing.RestoreQuotation(services, materials, o.Discount)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// List returns orders newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	log.Printf("[order][usecase] update status order_id=%s status=%s", id, status)
	updated, err := u.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) Document(ctx context.Context, id string) ([]byte, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := u.renderer.RenderOrder(o)
	if err != nil {
		log.Printf("[order][usecase] document render failed order_id=%s err=%v", o.ID, err)
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(metrics.KindPDF).Inc()
	return doc, nil
}

func (u *OrderUseCase) ExportSpreadsheet(ctx context.Context) ([]byte, error) {
	orders, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	b, err := u.exporter.ExportOrders(orders)
	if err != nil {
		log.Printf("[order][usecase] spreadsheet export failed orders=%d err=%v", len(orders), err)
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(metrics.KindXLSX).Inc()
	return b, nil
}
