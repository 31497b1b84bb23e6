package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
)

type stubGenerator struct {
	owner inventory.ReportOwner
	items []*entity.Item
}

func (g *stubGenerator) Generate(_ context.Context, owner inventory.ReportOwner, items []*entity.Item) ([]byte, error) {
	g.owner, g.items = owner, items
	return []byte("ok"), nil
}

func (g *stubGenerator) ContentType() string { return "text/plain" }
func (g *stubGenerator) Extension() string   { return "txt" }

func TestReportUseCase_Export(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewItemRepository()
	require.NoError(t, repo.Create(ctx, &entity.Item{ID: "a1", OwnerID: alice, Name: "W", CreatedAt: time.Now()}))
	require.NoError(t, repo.Create(ctx, &entity.Item{ID: "b1", OwnerID: bob, Name: "X", CreatedAt: time.Now()}))

	gen := &stubGenerator{}
	uc := inventory.NewReportUseCase(repo, map[string]inventory.ReportGenerator{"txt": gen})

	rep, err := uc.Export(ctx, inventory.ReportOwner{ID: alice, Username: "alice"}, " TXT ")
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), rep.Content)
	assert.Equal(t, "text/plain", rep.ContentType)
	assert.Regexp(t, `^inventario-alice-\d{8}\.txt$`, rep.Filename)
	require.Len(t, gen.items, 1)
	assert.Equal(t, "a1", gen.items[0].ID)
	assert.Equal(t, []string{"txt"}, uc.Formats())
}

func TestReportUseCase_FormatoDesconocido(t *testing.T) {
	uc := inventory.NewReportUseCase(memory.NewItemRepository(), map[string]inventory.ReportGenerator{})
	_, err := uc.Export(context.Background(), inventory.ReportOwner{ID: alice}, "docx")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
