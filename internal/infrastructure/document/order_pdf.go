package document

import (
	"fmt"
	"strings"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 100, Green: 100, Blue: 100}
	headerBg    = &props.Color{Red: 0, Green: 82, Blue: 147}
	stripeBg    = &props.Color{Red: 242, Green: 246, Blue: 250}
	whiteColor  = &props.Color{Red: 255, Green: 255, Blue: 255}
	sectionText = props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left, Color: mutedColor}
	valueText   = props.Text{Size: 9, Align: align.Left}
)

// Company identifies who issues the document.
type Company struct {
	Name  string
	Phone string
}

// PDFRenderer prints an order as a quote/service order document (A4, portrait).
// It prints the stored amounts and never recomputes them.
type PDFRenderer struct {
	company Company
}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(company Company) *PDFRenderer {
	return &PDFRenderer{company: company}
}

func (r *PDFRenderer) RenderOrder(o entities.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	r.addHeader(m, o)
	addCustomer(m, o)
	addServices(m, o)
	addMaterials(m, o)
	addTotals(m, o)
	addNotes(m, o)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *PDFRenderer) addHeader(m core.Maroto, o entities.Order) {
	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(text.New(r.company.Name, props.Text{Size: 15, Style: fontstyle.Bold, Align: align.Left})),
			col.New(5).Add(text.New("ORÇAMENTO / ORDEM DE SERVIÇO", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right})),
		),
		row.New(6).Add(
			col.New(7).Add(text.New(r.company.Phone, props.Text{Size: 8, Align: align.Left, Color: mutedColor})),
			col.New(5).Add(text.New(fmt.Sprintf("Nº %s", shortID(o.ID)), props.Text{Size: 9, Align: align.Right})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(
				fmt.Sprintf("Emitido em %s · Status: %s", o.CreatedAt.Format("02/01/2006 15:04"), statusLabel(o.Status)),
				props.Text{Size: 8, Align: align.Right, Color: mutedColor},
			)),
		),
		row.New(4),
	)
}

func addCustomer(m core.Maroto, o entities.Order) {
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New("CLIENTE", sectionText))))
	m.AddRows(row.New(6).Add(
		col.New(8).Add(text.New(o.CustomerName, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left})),
		col.New(4).Add(text.New(o.CustomerPhone, props.Text{Size: 9, Align: align.Right})),
	))
	if o.Address != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(o.Address, valueText))))
	}
	if o.EquipmentCategory != "" {
		equipment := o.EquipmentCategory.Label()
		if o.Capacity != 0 {
			equipment = fmt.Sprintf("%s %s BTU/h", equipment, o.Capacity)
		}
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New("Equipamento: "+equipment, valueText))))
	}
	m.AddRows(row.New(4))
}

func addServices(m core.Maroto, o entities.Order) {
	if len(o.Services) == 0 {
		return
	}
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New("SERVIÇOS", sectionText))))
	m.AddRows(tableHeader([]string{"#", "Serviço", "Descrição", "Valor"}, []int{1, 4, 5, 2}))

	for i, l := range o.Services {
		desc := l.Description
		if l.Category != "" {
			desc = strings.TrimSpace(fmt.Sprintf("%s %s", l.Category.Label(), capacityLabel(l.Capacity)) + " " + desc)
		}
		m.AddRows(tableRow(i, []int{1, 4, 5, 2}, []cell{
			{fmt.Sprintf("%d", l.Position), align.Center},
			{l.Type.Label(), align.Left},
			{desc, align.Left},
			{pricing.FormatBRL(l.Amount), align.Right},
		}))
	}
	m.AddRows(row.New(4))
}

func addMaterials(m core.Maroto, o entities.Order) {
	if len(o.Materials) == 0 {
		return
	}
	widths := []int{1, 4, 2, 1, 2, 2}
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New("MATERIAIS", sectionText))))
	m.AddRows(tableHeader([]string{"#", "Material", "Unidade", "Qtd", "Preço unit.", "Total"}, widths))

	for i, l := range o.Materials {
		m.AddRows(tableRow(i, widths, []cell{
			{fmt.Sprintf("%d", l.Position), align.Center},
			{l.Name, align.Left},
			{l.Unit, align.Center},
			{fmt.Sprintf("%d", l.Quantity), align.Center},
			{pricing.FormatBRL(l.UnitPrice), align.Right},
			{pricing.FormatBRL(l.LineTotal), align.Right},
		}))
	}
	m.AddRows(row.New(4))
}

func addTotals(m core.Maroto, o entities.Order) {
	label := props.Text{Size: 9, Align: align.Right, Color: mutedColor}
	value := props.Text{Size: 9, Align: align.Right}

	lines := []struct {
		label, value string
	}{
		{"Materiais", pricing.FormatBRL(o.MaterialsTotal)},
		{"Serviços", pricing.FormatBRL(o.ServicesTotal)},
		{"Subtotal", pricing.FormatBRL(o.Subtotal)},
		{"Desconto", pricing.FormatBRL(o.Discount)},
	}
	for _, l := range lines {
		m.AddRows(row.New(6).Add(
			col.New(9).Add(text.New(l.label, label)),
			col.New(3).Add(text.New(l.value, value)),
		))
	}
	m.AddRows(row.New(8).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right})),
		col.New(3).Add(text.New(pricing.FormatBRL(o.Total), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right})),
	))
}

func addNotes(m core.Maroto, o entities.Order) {
	if strings.TrimSpace(o.Notes) == "" {
		return
	}
	m.AddRows(
		row.New(6),
		row.New(6).Add(col.New(12).Add(text.New("OBSERVAÇÕES", sectionText))),
		row.New(12).Add(col.New(12).Add(text.New(o.Notes, valueText))),
	)
}

type cell struct {
	value string
	align align.Type
}

func tableHeader(titles []string, widths []int) core.Row {
	style := &props.Cell{BackgroundColor: headerBg}
	cols := make([]core.Col, 0, len(titles))
	for i, t := range titles {
		cols = append(cols, col.New(widths[i]).
			Add(text.New(t, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: whiteColor})).
			WithStyle(style))
	}
	return row.New(7).Add(cols...)
}

func tableRow(i int, widths []int, cells []cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for j, c := range cells {
		cl := col.New(widths[j]).Add(text.New(c.value, props.Text{Size: 8, Align: c.align}))
		if i%2 == 1 {
			cl = cl.WithStyle(&props.Cell{BackgroundColor: stripeBg})
		}
		cols = append(cols, cl)
	}
	return row.New(7).Add(cols...)
}

func capacityLabel(c entities.Capacity) string {
	if c == 0 {
		return ""
	}
	return c.String() + " BTU/h"
}

func statusLabel(s entities.OrderStatus) string {
	switch s {
	case entities.OrderStatusCompleted:
		return "Concluído"
	case entities.OrderStatusPending:
		return "Pendente"
	}
	return string(s)
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}
