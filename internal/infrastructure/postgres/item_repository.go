package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, owner_id, name, description, quantity, price, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
// Toda sentencia filtra por owner_id; no existe acceso a items sin dueño.
type ItemRepo struct {
	db Querier
}

// NewItemRepository construye el adaptador de persistencia para items.
func NewItemRepository(db Querier) *ItemRepo {
	return &ItemRepo{db: db}
}

// Create persiste un item.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.OwnerID, item.Name, item.Description, item.Quantity, item.Price,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// ListByOwner lista los items del dueño, más recientes primero.
func (r *ItemRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE owner_id = $1 ORDER BY created_at DESC, id`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Item, 0)
	for rows.Next() {
		var it entity.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetByIDAndOwner obtiene un item del dueño; nil si no existe o es de otro usuario.
func (r *ItemRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 AND owner_id = $2`
	var it entity.Item
	if err := scanItem(r.db.QueryRow(ctx, query, id, ownerID), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// UpdateByOwner sobrescribe los campos mutables en una sola sentencia condicionada al dueño
// y refresca item con la fila resultante. false si no hubo fila que actualizar.
func (r *ItemRepo) UpdateByOwner(ctx context.Context, item *entity.Item) (bool, error) {
	query := `
		UPDATE inventory_items
		SET name = $3, description = $4, quantity = $5, price = $6, updated_at = $7
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + itemColumns
	err := scanItem(r.db.QueryRow(ctx, query,
		item.ID, item.OwnerID, item.Name, item.Description, item.Quantity, item.Price, item.UpdatedAt,
	), item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("update item: %w", err)
	}
	return true, nil
}

// DeleteByOwner elimina un item del dueño. false si no existía.
func (r *ItemRepo) DeleteByOwner(ctx context.Context, id, ownerID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanItem(row pgx.Row, it *entity.Item) error {
	return row.Scan(
		&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Quantity, &it.Price,
		&it.CreatedAt, &it.UpdatedAt,
	)
}
