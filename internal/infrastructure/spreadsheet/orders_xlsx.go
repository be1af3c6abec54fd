package spreadsheet

import (
	"fmt"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	OrdersSheet    = "Ordens"
	ServicesSheet  = "Serviços"
	MaterialsSheet = "Materiais"

	moneyFormat = `"R$" #,##0.00`
)

var (
	orderHeaders    = []string{"Nº", "Data", "Cliente", "Telefone", "Serviço", "Equipamento", "Capacidade", "Endereço", "Materiais", "Serviços", "Subtotal", "Desconto", "Total", "Status"}
	orderWidths     = []float64{38, 17, 28, 16, 16, 14, 12, 40, 13, 13, 13, 13, 13, 11}
	serviceHeaders  = []string{"Ordem", "#", "Serviço", "Equipamento", "Capacidade", "Descrição", "Valor"}
	serviceWidths   = []float64{38, 5, 16, 14, 12, 40, 13}
	materialHeaders = []string{"Ordem", "#", "Material", "Unidade", "Qtd", "Preço unit.", "Total"}
	materialWidths  = []float64{38, 5, 36, 10, 8, 13, 13}
)

// XLSXExporter writes orders to a workbook with one sheet for the order headers
// and one sheet per line kind.
type XLSXExporter struct{}

var _ interfaces.ISpreadsheetExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

type styles struct {
	header int
	text   int
	money  int
}

func (e *XLSXExporter) ExportOrders(orders []entities.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), OrdersSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	for _, name := range []string{ServicesSheet, MaterialsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeHeader(f, OrdersSheet, orderHeaders, orderWidths, st); err != nil {
		return nil, err
	}
	if err := writeHeader(f, ServicesSheet, serviceHeaders, serviceWidths, st); err != nil {
		return nil, err
	}
	if err := writeHeader(f, MaterialsSheet, materialHeaders, materialWidths, st); err != nil {
		return nil, err
	}

	orderRow, serviceRow, materialRow := 2, 2, 2
	for _, o := range orders {
		if err := writeRow(f, OrdersSheet, orderRow, []any{
			o.ID,
			o.CreatedAt.Format("02/01/2006 15:04"),
			sanitizeCell(o.CustomerName),
			sanitizeCell(o.CustomerPhone),
			o.ServiceType.Label(),
			categoryLabel(o.EquipmentCategory),
			capacityValue(o.Capacity),
			sanitizeCell(o.Address),
			o.MaterialsTotal.InexactFloat64(),
			o.ServicesTotal.InexactFloat64(),
			o.Subtotal.InexactFloat64(),
			o.Discount.InexactFloat64(),
			o.Total.InexactFloat64(),
			statusLabel(o.Status),
		}, st, 9, 13); err != nil {
			return nil, err
		}
		orderRow++

		for _, l := range o.Services {
			if err := writeRow(f, ServicesSheet, serviceRow, []any{
				o.ID,
				l.Position,
				l.Type.Label(),
				categoryLabel(l.Category),
				capacityValue(l.Capacity),
				sanitizeCell(l.Description),
				l.Amount.InexactFloat64(),
			}, st, 7, 7); err != nil {
				return nil, err
			}
			serviceRow++
		}

		for _, l := range o.Materials {
			if err := writeRow(f, MaterialsSheet, materialRow, []any{
				o.ID,
				l.Position,
				sanitizeCell(l.Name),
				sanitizeCell(l.Unit),
				l.Quantity,
				l.UnitPrice.InexactFloat64(),
				l.LineTotal.InexactFloat64(),
			}, st, 6, 7); err != nil {
				return nil, err
			}
			materialRow++
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#005293"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return styles{}, fmt.Errorf("create header style: %w", err)
	}

	text, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return styles{}, fmt.Errorf("create text style: %w", err)
	}

	numFmt := moneyFormat
	money, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return styles{}, fmt.Errorf("create money style: %w", err)
	}

	return styles{header: header, text: text, money: money}, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, widths []float64, st styles) error {
	for i, h := range headers {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", name, err)
		}
		if err := f.SetCellValue(sheet, name+"1", h); err != nil {
			return err
		}
	}
	last, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheet, "A1", last+"1", st.header); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// writeRow writes values starting at column A; columns firstMoney..lastMoney
// (1-based, inclusive) get the currency format.
func writeRow(f *excelize.File, sheet string, row int, values []any, st styles, firstMoney, lastMoney int) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
		style := st.text
		if i+1 >= firstMoney && i+1 <= lastMoney {
			style = st.money
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

// sanitizeCell prevents formula injection by quoting dangerous leading characters.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#BFBFBF", Style: 1}
	}
	return borders
}

func categoryLabel(c entities.EquipmentCategory) string {
	if c == "" {
		return ""
	}
	return c.Label()
}

func capacityValue(c entities.Capacity) any {
	if c == 0 {
		return ""
	}
	return int(c)
}

func statusLabel(s entities.OrderStatus) string {
	if s == entities.OrderStatusCompleted {
		return "Concluído"
	}
	return "Pendente"
}
