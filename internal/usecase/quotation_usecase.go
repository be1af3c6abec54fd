package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDraftNotFound      = errors.New("quotation draft not found")
	ErrInvalidDraftID     = errors.New("invalid quotation id")
	ErrInvalidServiceLine = errors.New("invalid service line")
)

// IQuotationUseCase drives quotation drafts from creation to submission.
//
// A draft is either being edited (draft) or already turned into an order
// (persisted). Only drafts accept edits; a submitted draft is removed from the
// store once its order is written.
type IQuotationUseCase interface {
	Create(ctx context.Context) (pricing.Draft, error)
	CreateFromOrder(ctx context.Context, orderID string) (pricing.Draft, error)
	Get(ctx context.Context, id string) (pricing.Draft, error)
	AddMaterial(ctx context.Context, id, materialID string, quantity int) (pricing.Draft, error)
	UpdateMaterialQuantity(ctx context.Context, id string, index, quantity int) (pricing.Draft, error)
	RemoveMaterial(ctx context.Context, id string, index int) (pricing.Draft, error)
	AddService(ctx context.Context, id string, line entities.ServiceLine) (pricing.Draft, error)
	UpdateService(ctx context.Context, id string, index int, line entities.ServiceLine) (pricing.Draft, error)
	RemoveService(ctx context.Context, id string, index int) (pricing.Draft, error)
	SetDiscount(ctx context.Context, id string, discount decimal.Decimal) (pricing.Draft, error)
	Reset(ctx context.Context, id string) (pricing.Draft, error)
	Submit(ctx context.Context, id string, in SubmitInput) (entities.Order, error)
	Discard(ctx context.Context, id string) error
}

type QuotationUseCase struct {
	drafts      interfaces.IQuotationDraftStore
	materials   IMaterialUseCase
	priceTables IPriceTableUseCase
	orders      IOrderUseCase
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	drafts interfaces.IQuotationDraftStore,
	materials IMaterialUseCase,
	priceTables IPriceTableUseCase,
	orders IOrderUseCase,
) *QuotationUseCase {
	return &QuotationUseCase{drafts: drafts, materials: materials, priceTables: priceTables, orders: orders}
}

func (u *QuotationUseCase) Create(ctx context.Context) (pricing.Draft, error) {
	return u.create(ctx, pricing.NewQuotation(), "")
}

// CreateFromOrder re-edits a persisted order in a fresh draft. Submitting it
// creates a new order; the original is left as is.
func (u *QuotationUseCase) CreateFromOrder(ctx context.Context, orderID string) (pricing.Draft, error) {
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return pricing.Draft{}, err
	}
	return u.create(ctx, QuotationFromOrder(o), o.ID)
}

func (u *QuotationUseCase) create(ctx context.Context, q *pricing.Quotation, sourceOrderID string) (pricing.Draft, error) {
	now := time.Now().UTC()
	d := pricing.Draft{
		ID:            uuid.NewString(),
		State:         pricing.DraftStateDraft,
		Quotation:     q,
		SourceOrderID: sourceOrderID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	log.Printf("[quotation][usecase] draft created id=%s source_order_id=%q", d.ID, sourceOrderID)
	return u.drafts.Create(ctx, d)
}

func (u *QuotationUseCase) Get(ctx context.Context, id string) (pricing.Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pricing.Draft{}, ErrInvalidDraftID
	}

	d, err := u.drafts.Get(ctx, id)
	if err != nil {
		return pricing.Draft{}, err
	}
	if d.ID == "" {
		return pricing.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *QuotationUseCase) AddMaterial(ctx context.Context, id, materialID string, quantity int) (pricing.Draft, error) {
	m, err := u.materials.GetByID(ctx, materialID)
	if err != nil {
		return pricing.Draft{}, err
	}
	return u.edit(ctx, id, func(q *pricing.Quotation) error {
		q.AddMaterialLine(m, quantity)
		return nil
	})
}

func (u *QuotationUseCase) UpdateMaterialQuantity(ctx context.Context, id string, index, quantity int) (pricing.Draft, error) {
	return u.edit(ctx, id, func(q *pricing.Quotation) error {
		return q.UpdateMaterialQuantity(index, quantity)
	})
}

func (u *QuotationUseCase) RemoveMaterial(ctx context.Context, id string, index int) (pricing.Draft, error) {
	return u.edit(ctx, id, func(q *pricing.Quotation) error {
		return q.RemoveMaterialLine(index)
	})
}

// AddService appends a line, filling an empty installation or cleaning value
// from the current price table. Lines the table cannot price are still added.
func (u *QuotationUseCase) AddService(ctx context.Context, id string, line entities.ServiceLine) (pricing.Draft, error) {
	line, err := u.priceLine(ctx, line)
	if err != nil {
		return pricing.Draft{}, err
	}
	return u.edit(ctx, id, func(q *pricing.Quotation) error {
		q.AddServiceLine(line)
		return nil
	})
}

func (u *QuotationUseCase) UpdateService(ctx context.Context, id string, index int, line entities.ServiceLine) (pricing.Draft, error) {
	line, err := u.priceLine(ctx, line)
	if err != nil {
		return pricing.Draft{}, err
	}
	return u.edit(ctx, id, func(q *pricing.Quotation) error {
		return q.UpdateServiceLine(index, line)
	})
}

func (u *QuotationUseCase) RemoveService(ctx context.Context, id string, index int) (pricing.Draft, error) {
	return u.edit(ctx, id, func(q *pricing.Quotation) error {
		return q.RemoveServiceLine(index)
	})
}

func (u *QuotationUseCase) SetDiscount(ctx context.Context, id string, discount decimal.Decimal) (pricing.Draft, error) {
	return u.edit(ctx, id, func(q *pricing.Quotation) error {
		return q.SetDiscount(discount)
	})
}

func (u *QuotationUseCase) Reset(ctx context.Context, id string) (pricing.Draft, error) {
	return u.edit(ctx, id, func(q *pricing.Quotation) error {
		q.Reset()
		return nil
	})
}

// Submit moves the draft to persisted before writing the order, so a concurrent
// submit of the same draft fails with ErrQuotationNotDraft. If the order write
// fails the draft goes back to draft and keeps every line.
func (u *QuotationUseCase) Submit(ctx context.Context, id string, in SubmitInput) (entities.Order, error) {
	d, err := u.transition(ctx, id, pricing.DraftStatePersisted)
	if err != nil {
		return entities.Order{}, err
	}

	o, err := u.orders.Submit(ctx, d.Quotation, in)
	if err != nil {
		if _, rerr := u.transition(ctx, d.ID, pricing.DraftStateDraft); rerr != nil {
			log.Printf("[quotation][usecase] failed restoring draft id=%s err=%v", d.ID, rerr)
		}
		return entities.Order{}, err
	}

	if err := u.drafts.Delete(ctx, d.ID); err != nil {
		log.Printf("[quotation][usecase] failed removing submitted draft id=%s err=%v", d.ID, err)
	}
	log.Printf("[quotation][usecase] submitted id=%s order_id=%s", d.ID, o.ID)
	return o, nil
}

func (u *QuotationUseCase) Discard(ctx context.Context, id string) error {
	d, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	log.Printf("[quotation][usecase] draft discarded id=%s", d.ID)
	return u.drafts.Delete(ctx, d.ID)
}

func (u *QuotationUseCase) transition(ctx context.Context, id string, to pricing.DraftState) (pricing.Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pricing.Draft{}, ErrInvalidDraftID
	}

	d, err := u.drafts.Update(ctx, id, func(d *pricing.Draft) error {
		if to == pricing.DraftStatePersisted {
			if err := d.Mutable(); err != nil {
				return err
			}
		}
		d.State = to
		d.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return pricing.Draft{}, err
	}
	if d.ID == "" {
		return pricing.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *QuotationUseCase) edit(ctx context.Context, id string, fn func(q *pricing.Quotation) error) (pricing.Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pricing.Draft{}, ErrInvalidDraftID
	}

	d, err := u.drafts.Update(ctx, id, func(d *pricing.Draft) error {
		if err := d.Mutable(); err != nil {
			return err
		}
		if d.Quotation == nil {
			d.Quotation = pricing.NewQuotation()
		}
		if err := fn(d.Quotation); err != nil {
			return err
		}
		d.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return pricing.Draft{}, err
	}
	if d.ID == "" {
		return pricing.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

// priceLine validates the enumerations of a line and fills its value from the
// price table when possible.
func (u *QuotationUseCase) priceLine(ctx context.Context, line entities.ServiceLine) (entities.ServiceLine, error) {
	if line.Type == "" {
		line.Type = entities.ServiceInstallation
	}
	if !line.Type.Valid() {
		return entities.ServiceLine{}, ErrInvalidServiceLine
	}
	if line.Category != "" && !line.Category.Valid() {
		return entities.ServiceLine{}, ErrInvalidServiceLine
	}
	if line.Capacity != 0 && !line.Capacity.Valid() {
		return entities.ServiceLine{}, ErrInvalidServiceLine
	}
	// air curtains are only priced for cleaning
	if line.Type == entities.ServiceInstallation && line.Category == entities.CategoryCurtain {
		return entities.ServiceLine{}, ErrInvalidServiceLine
	}

	if line.Type.RequiresCustomValue() {
		return line, nil
	}
	r, err := u.priceTables.Resolver(ctx)
	if err != nil {
		return entities.ServiceLine{}, err
	}
	priced, ok := pricing.PriceServiceLine(r, line)
	if !ok {
		log.Printf("[quotation][usecase] service line left unpriced type=%s category=%s capacity=%d", line.Type, line.Category, line.Capacity)
	}
	return priced, nil
}
