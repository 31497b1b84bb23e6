package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest entrada para crear o actualizar un item. name y quantity son requeridos.
type ItemRequest struct {
	Name        string      `json:"name" validate:"max=255"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
	Quantity    NumberInput `json:"quantity"`
	Price       NumberInput `json:"price"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID          string              `json:"id"`
	OwnerID     string              `json:"owner_id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Quantity    int64               `json:"quantity"`
	Price       decimal.NullDecimal `json:"price"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ItemMutationResponse salida de creación y actualización.
type ItemMutationResponse struct {
	Message string       `json:"message"`
	Item    ItemResponse `json:"item"`
}
