package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/validation"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// Mensajes expuestos al cliente.
const (
	MsgCreated        = "Item creado exitosamente"
	MsgUpdated        = "Item actualizado exitosamente"
	MsgDeleted        = "Item eliminado exitosamente"
	MsgRequiredFields = "Nombre y cantidad son requeridos"
)

// ItemUseCase CRUD de items, siempre acotado al usuario autenticado (ownerID).
// Un item de otro usuario es indistinguible de uno inexistente: ErrNotFound.
type ItemUseCase struct {
	repo repository.ItemRepository
	now  func() time.Time
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, now: time.Now}
}

// List devuelve los items del dueño, más recientes primero.
func (uc *ItemUseCase) List(ctx context.Context, ownerID string) ([]dto.ItemResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Create valida y persiste un item nuevo con owner = ownerID.
func (uc *ItemUseCase) Create(ctx context.Context, ownerID string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := buildItem(in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	item.ID = uuid.New().String()
	item.OwnerID = ownerID
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	out := toItemResponse(item)
	return &out, nil
}

// GetByID obtiene un item del dueño.
func (uc *ItemUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.ItemResponse, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	item, err := uc.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := toItemResponse(item)
	return &out, nil
}

// Update sobrescribe los campos mutables con una sola sentencia condicionada al dueño.
func (uc *ItemUseCase) Update(ctx context.Context, ownerID, id string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	item, err := buildItem(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	item.OwnerID = ownerID
	item.UpdatedAt = uc.now()
	ok, err := uc.repo.UpdateByOwner(ctx, item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toItemResponse(item)
	return &out, nil
}

// Delete elimina un item del dueño.
func (uc *ItemUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	ok, err := uc.repo.DeleteByOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// buildItem valida la entrada y construye la parte mutable del item.
func buildItem(in dto.ItemRequest) (*entity.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.Quantity.Set {
		return nil, domain.NewValidationError("name", MsgRequiredFields)
	}
	in.Name = name
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	q := in.Quantity.Value
	if !q.IsInteger() || q.IsNegative() {
		return nil, domain.NewValidationError("quantity", "quantity debe ser un entero no negativo")
	}
	if !q.LessThanOrEqual(decimal.NewFromInt(maxQuantity)) {
		return nil, domain.NewValidationError("quantity", fmt.Sprintf("quantity no puede superar %d", maxQuantity))
	}
	item := &entity.Item{
		Name:        name,
		Description: in.Description,
		Quantity:    q.IntPart(),
	}
	if in.Price.Set {
		if in.Price.Value.IsNegative() {
			return nil, domain.NewValidationError("price", "price no puede ser negativo")
		}
		item.Price = decimal.NullDecimal{Decimal: in.Price.Value.Round(2), Valid: true}
	}
	return item, nil
}

// maxQuantity límite de la columna INTEGER.
const maxQuantity = 1<<31 - 1

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		Quantity:    it.Quantity,
		Price:       it.Price,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
