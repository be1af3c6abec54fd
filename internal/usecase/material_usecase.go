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
	ErrMaterialNotFound     = errors.New("material not found")
	ErrMaterialInUse        = errors.New("material is referenced by persisted orders")
	ErrInvalidMaterialID    = errors.New("invalid material id")
	ErrInvalidMaterialName  = errors.New("material name is required")
	ErrInvalidMaterialPrice = errors.New("material price must be a non-negative amount")
)

// MaterialInput carries a new catalog entry. Price is free text ("12,50" or "12.50").
type MaterialInput struct {
	Name  string
	Unit  string
	Price string
}

// MaterialPatch updates only the fields that are not nil.
type MaterialPatch struct {
	Name  *string
	Unit  *string
	Price *string
}

type IMaterialUseCase interface {
	List(ctx context.Context) ([]entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	Create(ctx context.Context, in MaterialInput) (entities.Material, error)
	Update(ctx context.Context, id string, patch MaterialPatch) (entities.Material, error)
	Delete(ctx context.Context, id string) error
}

type MaterialUseCase struct {
	repo   interfaces.IMaterialRepository
	orders interfaces.IOrderRepository
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository, orders interfaces.IOrderRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, orders: orders}
}

func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	return u.repo.List(ctx)
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) Create(ctx context.Context, in MaterialInput) (entities.Material, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Material{}, ErrInvalidMaterialName
	}
	price, err := parseMaterialPrice(in.Price)
	if err != nil {
		return entities.Material{}, err
	}

	now := time.Now().UTC()
	m := entities.Material{
		ID:        uuid.NewString(),
		Name:      name,
		Unit:      strings.TrimSpace(in.Unit),
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	log.Printf("[material][usecase] create id=%s name=%q", m.ID, m.Name)
	return u.repo.Create(ctx, m)
}

func (u *MaterialUseCase) Update(ctx context.Context, id string, patch MaterialPatch) (entities.Material, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Material{}, ErrInvalidMaterialName
		}
		m.Name = name
	}
	if patch.Unit != nil {
		m.Unit = strings.TrimSpace(*patch.Unit)
	}
	if patch.Price != nil {
		price, err := parseMaterialPrice(*patch.Price)
		if err != nil {
			return entities.Material{}, err
		}
		m.Price = price
	}
	m.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	if updated.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return updated, nil
}

// Delete refuses to remove a material that any persisted order line still
// references. The check runs before the delete is attempted.
func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	refs, err := u.orders.CountMaterialReferences(ctx, m.ID)
	if err != nil {
		log.Printf("[material][usecase] reference check failed id=%s err=%v", m.ID, err)
		return err
	}
	if refs > 0 {
		log.Printf("[material][usecase] delete rejected id=%s references=%d", m.ID, refs)
		return ErrMaterialInUse
	}

	log.Printf("[material][usecase] delete id=%s", m.ID)
	return u.repo.Delete(ctx, m.ID)
}

func parseMaterialPrice(raw string) (decimal.Decimal, error) {
	price, ok := pricing.ParseAmount(raw)
	if !ok || price.IsNegative() {
		return decimal.Zero, ErrInvalidMaterialPrice
	}
	return price, nil
}
