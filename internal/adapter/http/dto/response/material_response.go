package response

import (
	"time"

	"refrigeracao_os/internal/domain/entities"

	"github.com/samber/lo"
)

type MaterialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Price     Money     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Unit:      m.Unit,
		Price:     NewMoney(m.Price),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromMaterials(ms []entities.Material) []MaterialResponse {
	return lo.Map(ms, func(m entities.Material, _ int) MaterialResponse {
		return FromMaterial(m)
	})
}
