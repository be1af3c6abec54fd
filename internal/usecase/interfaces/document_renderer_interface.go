package interfaces

import "refrigeracao_os/internal/domain/entities"

// IDocumentRenderer turns a persisted order into a printable document.
// Amounts are printed as stored; nothing is recalculated.
type IDocumentRenderer interface {
	RenderOrder(o entities.Order) ([]byte, error)
}

// ISpreadsheetExporter builds the accounting spreadsheet of a set of orders.
type ISpreadsheetExporter interface {
	ExportOrders(orders []entities.Order) ([]byte, error)
}
