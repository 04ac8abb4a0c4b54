package ledger

import (
	"context"
	"fmt"

	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// StockQueryUseCase consultas de solo lectura sobre el stock agregado.
// Eventualmente consistente con transacciones en vuelo: no toma bloqueos.
type StockQueryUseCase struct {
	stockRepo     repository.StockRepository
	variantRepo   repository.VariantRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockQueryUseCase construye la superficie de consultas de stock.
func NewStockQueryUseCase(
	stockRepo repository.StockRepository,
	variantRepo repository.VariantRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{
		stockRepo:     stockRepo,
		variantRepo:   variantRepo,
		warehouseRepo: warehouseRepo,
	}
}

// TotalStock devuelve el stock total de una variante sumando todos los almacenes.
func (uc *StockQueryUseCase) TotalStock(_ context.Context, variantID string) (int, error) {
	variant, err := uc.variantRepo.GetByID(variantID)
	if err != nil {
		return 0, fmt.Errorf("resolver variante: %w", err)
	}
	if variant == nil {
		return 0, domain.ErrNotFound
	}
	total, err := uc.stockRepo.TotalQuantity(variantID)
	if err != nil {
		return 0, fmt.Errorf("stock total: %w", err)
	}
	return total, nil
}

// WarehouseStock lista el stock de un almacén con filtros y paginación.
func (uc *StockQueryUseCase) WarehouseStock(_ context.Context, warehouseID string, f repository.StockFilter, limit, offset int) ([]*repository.StockItem, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, fmt.Errorf("resolver almacén: %w", err)
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.stockRepo.ListByWarehouse(warehouseID, f, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("stock por almacén: %w", err)
	}
	return list, nil
}
