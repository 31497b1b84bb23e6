package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item elemento de inventario. Siempre tiene exactamente un dueño (OwnerID)
// y solo ese dueño puede leerlo, modificarlo o eliminarlo.
type Item struct {
	ID          string
	OwnerID     string
	Name        string
	Description *string
	Quantity    int64
	Price       decimal.NullDecimal // opcional, no negativo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
