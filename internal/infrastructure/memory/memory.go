// Package memory implementa los repositorios en memoria. Sirve para desarrollo local
// sin PostgreSQL (DB_DRIVER=memory) y como doble de pruebas; los datos se pierden al reiniciar.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var (
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.ItemRepository = (*ItemRepo)(nil)
)

// UserRepo almacén de usuarios en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewUserRepository construye un UserRepo vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[string]entity.User)}
}

// Create inserta el usuario; ErrConflict si email o username ya existen.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
			return domain.ErrConflict
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// Delete borra un usuario y sus items (equivalente a ON DELETE CASCADE). Solo para pruebas y
// administración; ningún endpoint lo expone.
func (r *UserRepo) Delete(id string, items *ItemRepo) {
	r.mu.Lock()
	delete(r.users, id)
	r.mu.Unlock()
	if items != nil {
		items.deleteOwner(id)
	}
}

// ItemRepo almacén de items en memoria.
type ItemRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[string]storedItem
}

type storedItem struct {
	item entity.Item
	seq  int64 // desempate de created_at iguales
}

// NewItemRepository construye un ItemRepo vacío.
func NewItemRepository() *ItemRepo {
	return &ItemRepo{items: make(map[string]storedItem)}
}

func (r *ItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; ok {
		return domain.ErrConflict
	}
	r.seq++
	r.items[item.ID] = storedItem{item: *item, seq: r.seq}
	return nil
}

func (r *ItemRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Item, error) {
	r.mu.RLock()
	var rows []storedItem
	for _, s := range r.items {
		if s.item.OwnerID == ownerID {
			rows = append(rows, s)
		}
	}
	r.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].item.CreatedAt.Equal(rows[j].item.CreatedAt) {
			return rows[i].item.CreatedAt.After(rows[j].item.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]*entity.Item, 0, len(rows))
	for i := range rows {
		it := rows[i].item
		out = append(out, &it)
	}
	return out, nil
}

func (r *ItemRepo) GetByIDAndOwner(_ context.Context, id, ownerID string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok || s.item.OwnerID != ownerID {
		return nil, nil
	}
	it := s.item
	return &it, nil
}

func (r *ItemRepo) UpdateByOwner(_ context.Context, item *entity.Item) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[item.ID]
	if !ok || s.item.OwnerID != item.OwnerID {
		return false, nil
	}
	s.item.Name = item.Name
	s.item.Description = item.Description
	s.item.Quantity = item.Quantity
	s.item.Price = item.Price
	s.item.UpdatedAt = item.UpdatedAt
	r.items[item.ID] = s
	*item = s.item
	return true, nil
}

func (r *ItemRepo) DeleteByOwner(_ context.Context, id, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok || s.item.OwnerID != ownerID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *ItemRepo) deleteOwner(ownerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.items {
		if s.item.OwnerID == ownerID {
			delete(r.items, id)
		}
	}
}
