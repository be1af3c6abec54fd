package request

import "refrigeracao_os/internal/usecase"

type MaterialRequest struct {
	Name  string     `json:"name" binding:"required"`
	Unit  string     `json:"unit"`
	Price AmountText `json:"price"`
}

func (r MaterialRequest) ToInput() usecase.MaterialInput {
	return usecase.MaterialInput{Name: r.Name, Unit: r.Unit, Price: r.Price.String()}
}

// MaterialPatchRequest updates only the fields present in the payload.
type MaterialPatchRequest struct {
	Name  *string     `json:"name"`
	Unit  *string     `json:"unit"`
	Price *AmountText `json:"price"`
}

func (r MaterialPatchRequest) ToPatch() usecase.MaterialPatch {
	p := usecase.MaterialPatch{Name: r.Name, Unit: r.Unit}
	if r.Price != nil {
		price := r.Price.String()
		p.Price = &price
	}
	return p
}

func (r MaterialPatchRequest) Empty() bool {
	return r.Name == nil && r.Unit == nil && r.Price == nil
}
