// Package report implementa los generadores de exportación del inventario (PDF y XML).
package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// summary totales del inventario exportado.
type summary struct {
	Items int
	Units int64
	Value decimal.Decimal // suma de quantity*price de los items con precio
}

func summarize(items []*entity.Item) summary {
	s := summary{Items: len(items), Value: decimal.Zero}
	for _, it := range items {
		s.Units += it.Quantity
		if it.Price.Valid {
			s.Value = s.Value.Add(it.Price.Decimal.Mul(decimal.NewFromInt(it.Quantity)))
		}
	}
	return s
}

// formatMoney formatea con punto de miles y coma decimal. Ej: 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	intPart, frac, _ := strings.Cut(fixed, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf) + "," + frac
}
