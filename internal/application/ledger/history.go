package ledger

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// ReportRenderer vuelca un listado de movimientos a CSV o PDF (infraestructura).
type ReportRenderer interface {
	RenderCSV(movements []*repository.MovementDetail, w io.Writer) error
	RenderPDF(movements []*repository.MovementDetail) ([]byte, error)
}

// HistoryUseCase consultas de solo lectura sobre el libro de movimientos.
// Nunca muta stock.
type HistoryUseCase struct {
	movRepo     repository.MovementRepository
	variantRepo repository.VariantRepository
	renderer    ReportRenderer
}

// NewHistoryUseCase construye la superficie de consultas del histórico.
func NewHistoryUseCase(
	movRepo repository.MovementRepository,
	variantRepo repository.VariantRepository,
	renderer ReportRenderer,
) *HistoryUseCase {
	return &HistoryUseCase{movRepo: movRepo, variantRepo: variantRepo, renderer: renderer}
}

// History devuelve una página del histórico con el total de coincidencias.
func (uc *HistoryUseCase) History(_ context.Context, f repository.MovementFilter, limit, offset int) ([]*repository.MovementDetail, int, error) {
	list, err := uc.movRepo.List(f, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listar movimientos: %w", err)
	}
	total, err := uc.movRepo.Count(f)
	if err != nil {
		return nil, 0, fmt.Errorf("contar movimientos: %w", err)
	}
	return list, total, nil
}

// VariantHistory devuelve el histórico de una variante en todos los almacenes.
func (uc *HistoryUseCase) VariantHistory(_ context.Context, variantID string, limit, offset int) ([]*repository.MovementDetail, error) {
	variant, err := uc.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, fmt.Errorf("resolver variante: %w", err)
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByVariant(variantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("historial de variante: %w", err)
	}
	return list, nil
}

// Export vuelca el histórico completo filtrado en el formato pedido ("csv" o "pdf").
func (uc *HistoryUseCase) Export(_ context.Context, f repository.MovementFilter, format string, w io.Writer) error {
	list, err := uc.movRepo.ListAll(f)
	if err != nil {
		return fmt.Errorf("exportar movimientos: %w", err)
	}

	switch strings.ToLower(format) {
	case "csv":
		return uc.renderer.RenderCSV(list, w)
	case "", "pdf":
		data, err := uc.renderer.RenderPDF(list)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return domain.ErrInvalidInput
	}
}
