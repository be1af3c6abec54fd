package request

import (
	"strings"

	"refrigeracao_os/internal/domain/entities"
)

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
