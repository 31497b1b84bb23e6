package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func sampleItems() []*entity.Item {
	desc := "tornillo & tuerca <M8>"
	return []*entity.Item{
		{
			ID: "a1", OwnerID: "u1", Name: "Widget", Description: &desc, Quantity: 3,
			Price:     decimal.NullDecimal{Decimal: decimal.RequireFromString("1250.5"), Valid: true},
			CreatedAt: fixedNow, UpdatedAt: fixedNow,
		},
		{ID: "a2", OwnerID: "u1", Name: "Sin precio", Quantity: 7, CreatedAt: fixedNow, UpdatedAt: fixedNow},
	}
}

func TestSummarize(t *testing.T) {
	s := summarize(sampleItems())
	assert.Equal(t, 2, s.Items)
	assert.EqualValues(t, 10, s.Units)
	assert.Equal(t, "3751.5", s.Value.String())
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0,00",
		"999.9":     "999,90",
		"1000":      "1.000,00",
		"1234567.5": "1.234.567,50",
		"-2500":     "-2.500,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestXMLGenerator(t *testing.T) {
	g := &XMLGenerator{now: func() time.Time { return fixedNow }}
	out, err := g.Generate(context.Background(), inventory.ReportOwner{ID: "u1", Username: "alice"}, sampleItems())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("inventario")
	require.NotNil(t, root)
	assert.Equal(t, "alice", root.SelectAttrValue("usuario", ""))
	assert.Equal(t, "2025-03-14T10:30:00Z", root.SelectAttrValue("generado", ""))

	items := root.SelectElements("item")
	require.Len(t, items, 2)
	assert.Equal(t, "tornillo & tuerca <M8>", items[0].SelectElement("descripcion").Text())
	assert.Equal(t, "1250.50", items[0].SelectElement("precio").Text())
	assert.Nil(t, items[1].SelectElement("precio"))
	assert.Nil(t, items[1].SelectElement("descripcion"))
	assert.Equal(t, "3751.50", root.FindElement("totales/valor").Text())
	assert.Equal(t, "application/xml", g.ContentType())
}

func TestPDFGenerator(t *testing.T) {
	g := &PDFGenerator{now: func() time.Time { return fixedNow }}
	owner := inventory.ReportOwner{ID: "u1", Username: "alice"}

	out, err := g.Generate(context.Background(), owner, sampleItems())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	empty, err := g.Generate(context.Background(), owner, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF")))
	assert.Equal(t, "pdf", g.Extension())
}
