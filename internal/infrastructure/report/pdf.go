package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

var _ inventory.ReportGenerator = (*PDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFGenerator genera el listado del inventario en PDF (A4) con Maroto v2.
//
// Layout:
//
//	Título + usuario        | Fecha de generación
//	Cant | Nombre | Descripción | P.Unit | Subtotal
//	Totales: items / unidades / valor
type PDFGenerator struct {
	now func() time.Time
}

// NewPDFGenerator construye el generador.
func NewPDFGenerator() *PDFGenerator { return &PDFGenerator{now: time.Now} }

func (g *PDFGenerator) ContentType() string { return "application/pdf" }
func (g *PDFGenerator) Extension() string   { return "pdf" }

// Generate genera el PDF y devuelve sus bytes.
func (g *PDFGenerator) Generate(_ context.Context, owner inventory.ReportOwner, items []*entity.Item) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario de "+owner.Username, true).
		WithAuthor(owner.Username, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(owner, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin items registrados", props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
		)))
	}
	m.AddRows(tableDetailRows(items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summarize(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(owner inventory.ReportOwner, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Usuario: "+owner.Username, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Nombre", 3, align.Left),
		h("Descripción", 4, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func tableDetailRows(items []*entity.Item) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc, unit, subtotal := "", "-", "-"
		if it.Description != nil {
			desc = *it.Description
		}
		if it.Price.Valid {
			unit = "$" + formatMoney(it.Price.Decimal)
			subtotal = "$" + formatMoney(it.Price.Decimal.Mul(decimal.NewFromInt(it.Quantity)))
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(it.Quantity, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(desc, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(unit, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(subtotal, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRow(s summary) core.Row {
	label := func(v string, top float64) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(v string, top float64) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Items:", 1),
			label("Unidades:", 6),
			text.New("VALOR TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 11,
			}),
		),
		col.New(3).Add(
			value(strconv.Itoa(s.Items), 1),
			value(strconv.FormatInt(s.Units, 10), 6),
			text.New("$"+formatMoney(s.Value), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 11,
			}),
		),
	)
}
