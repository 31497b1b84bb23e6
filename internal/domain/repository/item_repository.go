package repository

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// ItemRepository puerto de persistencia para Item. Toda operación filtra por dueño.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	// ListByOwner ordena por created_at descendente.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Item, error)
	// GetByIDAndOwner devuelve (nil, nil) si no existe o pertenece a otro usuario.
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Item, error)
	// UpdateByOwner sobrescribe los campos mutables en una sola sentencia condicionada al dueño
	// y refresca item con la fila resultante. false si ninguna fila coincidió.
	UpdateByOwner(ctx context.Context, item *entity.Item) (bool, error)
	// DeleteByOwner elimina en una sola sentencia condicionada al dueño. false si ninguna fila coincidió.
	DeleteByOwner(ctx context.Context, id, ownerID string) (bool, error)
}
