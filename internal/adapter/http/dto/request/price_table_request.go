package request

// PriceRequest sets one price cell (or a whole category row). The text is
// sanitized before it is stored; an empty value leaves the cell blank.
type PriceRequest struct {
	Price AmountText `json:"price"`
}
