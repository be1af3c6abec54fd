package interfaces

import (
	"context"

	"refrigeracao_os/internal/domain/entities"
)

// IOrderRepository persists submitted orders together with their lines.
//
// Create writes the header, the service lines, the material lines and, when
// newCustomer is not nil, the customer in a single write: either all of them are
// stored or none is.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order, newCustomer *entities.Customer) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	CountMaterialReferences(ctx context.Context, materialID string) (int, error)
}
