package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

var _ inventory.ReportGenerator = (*XMLGenerator)(nil)

// XMLGenerator exporta el inventario como documento XML:
//
//	<inventario usuario="alice" generado="..." items="2">
//	  <item id="..."><nombre/>...<precio/></item>
//	  <totales><unidades/><valor/></totales>
//	</inventario>
type XMLGenerator struct {
	now func() time.Time
}

// NewXMLGenerator construye el generador.
func NewXMLGenerator() *XMLGenerator { return &XMLGenerator{now: time.Now} }

func (g *XMLGenerator) ContentType() string { return "application/xml" }
func (g *XMLGenerator) Extension() string   { return "xml" }

// Generate construye el documento con etree.
func (g *XMLGenerator) Generate(_ context.Context, owner inventory.ReportOwner, items []*entity.Item) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("inventario")
	root.CreateAttr("usuario", owner.Username)
	root.CreateAttr("generado", g.now().UTC().Format(time.RFC3339))
	root.CreateAttr("items", strconv.Itoa(len(items)))

	for _, it := range items {
		el := root.CreateElement("item")
		el.CreateAttr("id", it.ID)
		el.CreateElement("nombre").SetText(it.Name)
		if it.Description != nil {
			el.CreateElement("descripcion").SetText(*it.Description)
		}
		el.CreateElement("cantidad").SetText(strconv.FormatInt(it.Quantity, 10))
		if it.Price.Valid {
			el.CreateElement("precio").SetText(it.Price.Decimal.StringFixed(2))
		}
		el.CreateElement("creado").SetText(it.CreatedAt.UTC().Format(time.RFC3339))
		el.CreateElement("actualizado").SetText(it.UpdatedAt.UTC().Format(time.RFC3339))
	}

	s := summarize(items)
	totals := root.CreateElement("totales")
	totals.CreateElement("unidades").SetText(strconv.FormatInt(s.Units, 10))
	totals.CreateElement("valor").SetText(s.Value.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar documento: %w", err)
	}
	return out, nil
}
