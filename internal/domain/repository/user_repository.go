package repository

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// UserRepository puerto de persistencia para User (Credential Store).
// Los Get devuelven (nil, nil) si el usuario no existe.
type UserRepository interface {
	// Create inserta el usuario; devuelve domain.ErrConflict si email o username ya existen.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}
