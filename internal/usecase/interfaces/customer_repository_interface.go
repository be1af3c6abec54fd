package interfaces

import (
	"context"

	"refrigeracao_os/internal/domain/entities"
)

// ICustomerRepository looks up existing customers. New customers are stored
// together with their first order (see IOrderRepository.Create).
type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
