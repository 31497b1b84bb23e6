package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ImportedItem item leído de un XML de inventario.
type ImportedItem struct {
	Name        string
	Description *string
	Quantity    int64
	Price       *decimal.Decimal
}

// ParseInventoryXML lee un documento con el formato de XMLGenerator (<inventario><item>...).
// Acepta UTF-8 e ISO-8859-1/Windows-1252 según la declaración XML. Los atributos id y las
// fechas se ignoran: al importar se generan nuevos.
func ParseInventoryXML(r io.Reader) ([]ImportedItem, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("xml: leer documento: %w", err)
	}
	root := doc.SelectElement("inventario")
	if root == nil {
		return nil, fmt.Errorf("xml: falta el elemento <inventario>")
	}

	var out []ImportedItem
	for i, el := range root.SelectElements("item") {
		it, err := parseItem(el)
		if err != nil {
			return nil, fmt.Errorf("xml: item %d: %w", i+1, err)
		}
		out = append(out, it)
	}
	return out, nil
}

func parseItem(el *etree.Element) (ImportedItem, error) {
	var it ImportedItem
	it.Name = strings.TrimSpace(childText(el, "nombre"))
	if it.Name == "" {
		return it, fmt.Errorf("nombre vacío")
	}
	if d := el.SelectElement("descripcion"); d != nil {
		desc := d.Text()
		it.Description = &desc
	}
	q, err := strconv.ParseInt(strings.TrimSpace(childText(el, "cantidad")), 10, 64)
	if err != nil {
		return it, fmt.Errorf("cantidad inválida: %w", err)
	}
	it.Quantity = q
	if p := strings.TrimSpace(childText(el, "precio")); p != "" {
		price, err := decimal.NewFromString(p)
		if err != nil {
			return it, fmt.Errorf("precio inválido: %w", err)
		}
		it.Price = &price
	}
	return it, nil
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return c.Text()
	}
	return ""
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return input, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
}
