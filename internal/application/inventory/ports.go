package inventory

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// ReportOwner datos del dueño que se imprimen en la cabecera de un reporte.
type ReportOwner struct {
	ID       string
	Username string
}

// ReportGenerator genera una representación exportable (PDF, XML...) del inventario de un usuario.
type ReportGenerator interface {
	Generate(ctx context.Context, owner ReportOwner, items []*entity.Item) ([]byte, error)
	ContentType() string
	Extension() string
}
