package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// Report archivo exportado listo para descargar.
type Report struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReportUseCase exporta el inventario del usuario en los formatos registrados.
type ReportUseCase struct {
	repo       repository.ItemRepository
	generators map[string]ReportGenerator
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso. generators se indexa por formato ("pdf", "xml").
func NewReportUseCase(repo repository.ItemRepository, generators map[string]ReportGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, generators: generators, now: time.Now}
}

// Formats formatos disponibles.
func (uc *ReportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.generators))
	for f := range uc.generators {
		out = append(out, f)
	}
	return out
}

// Export genera el reporte de los items del dueño en el formato pedido.
func (uc *ReportUseCase) Export(ctx context.Context, owner ReportOwner, format string) (*Report, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	gen, ok := uc.generators[format]
	if !ok {
		return nil, domain.NewValidationError("format", fmt.Sprintf("formato no soportado: %q", format))
	}
	items, err := uc.repo.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	content, err := gen.Generate(ctx, owner, items)
	if err != nil {
		return nil, fmt.Errorf("reporte %s: %w", format, err)
	}
	return &Report{
		Content:     content,
		ContentType: gen.ContentType(),
		Filename:    fmt.Sprintf("inventario-%s-%s.%s", owner.Username, uc.now().Format("20060102"), gen.Extension()),
	}, nil
}
