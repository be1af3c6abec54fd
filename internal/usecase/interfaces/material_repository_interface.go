package interfaces

import (
	"context"

	"refrigeracao_os/internal/domain/entities"
)

// IMaterialRepository abstracts persistence of the material catalog.
//
// GetByID returns a zero Material when the id does not exist.
type IMaterialRepository interface {
	List(ctx context.Context) ([]entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	Create(ctx context.Context, material entities.Material) (entities.Material, error)
	Update(ctx context.Context, material entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id string) error
}
