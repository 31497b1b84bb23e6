package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
)

func TestUserRepo_UnicidadEmailYUsername(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "1", Username: "alice", Email: "alice@x.com"}))

	assert.ErrorIs(t, repo.Create(ctx, &entity.User{ID: "2", Username: "other", Email: "ALICE@x.com"}), domain.ErrConflict)
	assert.ErrorIs(t, repo.Create(ctx, &entity.User{ID: "3", Username: "alice", Email: "b@x.com"}), domain.ErrConflict)

	u, err := repo.GetByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "1", u.ID)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItemRepo_AcotadoPorDueno(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewItemRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.Item{ID: "a1", OwnerID: "A", Name: "viejo", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &entity.Item{ID: "a2", OwnerID: "A", Name: "nuevo", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Item{ID: "b1", OwnerID: "B", Name: "ajeno", CreatedAt: base}))

	list, err := repo.ListByOwner(ctx, "A")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a2", list[0].ID, "orden created_at descendente")

	got, err := repo.GetByIDAndOwner(ctx, "b1", "A")
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err := repo.UpdateByOwner(ctx, &entity.Item{ID: "b1", OwnerID: "A", Name: "robado"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.DeleteByOwner(ctx, "b1", "A")
	require.NoError(t, err)
	assert.False(t, ok)

	upd := &entity.Item{ID: "a1", OwnerID: "A", Name: "editado", Quantity: 3, UpdatedAt: base.Add(2 * time.Hour)}
	ok, err = repo.UpdateByOwner(ctx, upd)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, base, upd.CreatedAt, "UpdateByOwner refresca el item con la fila almacenada")
}

func TestUserRepo_DeleteCascada(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	items := memory.NewItemRepository()
	require.NoError(t, users.Create(ctx, &entity.User{ID: "A", Username: "alice", Email: "a@x.com"}))
	require.NoError(t, items.Create(ctx, &entity.Item{ID: "a1", OwnerID: "A", Name: "w"}))

	users.Delete("A", items)

	u, _ := users.GetByID(ctx, "A")
	assert.Nil(t, u)
	list, _ := items.ListByOwner(ctx, "A")
	assert.Empty(t, list)
}
