package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
	"github.com/wattscycling/warehouse-api/pkg/logger"
)

// UseCase es el único punto de entrada que muta stock. Registra movimientos de
// forma transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback,
// y deja el registro de auditoría en la misma transacción.
type UseCase struct {
	txRunner      TxRunner
	variantRepo   repository.VariantRepository
	warehouseRepo repository.WarehouseRepository
	notifier      Notifier
	log           *logger.Logger
}

// NewUseCase construye el motor de movimientos.
func NewUseCase(
	txRunner TxRunner,
	variantRepo repository.VariantRepository,
	warehouseRepo repository.WarehouseRepository,
	notifier Notifier,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		variantRepo:   variantRepo,
		warehouseRepo: warehouseRepo,
		notifier:      notifier,
		log:           log,
	}
}

// MovementInput entrada para registrar un movimiento de stock.
// Quantity siempre positiva; Type decide si suma o resta.
// Los precios manuales son opcionales: si son nil se usan los de la variante.
type MovementInput struct {
	VariantSKU        string
	WarehouseID       string
	Quantity          int
	Type              string
	Notes             string
	UnitPurchasePrice *decimal.Decimal
	UnitSalePrice     *decimal.Decimal
	CreatedBy         string
}

// Result es la vista devuelta tras aceptar un movimiento: el registro de
// auditoría y la línea de stock ya actualizada.
type Result struct {
	Movement      *entity.Movement
	Stock         *entity.StockLine
	SKU           string
	WarehouseDesc string
}

// ApplyMovement valida la petición, resuelve variante y almacén, y dentro de una
// transacción bloquea la línea de stock, aplica la polaridad del tipo, persiste
// línea y movimiento, y tras el commit dispara la notificación (best-effort).
func (uc *UseCase) ApplyMovement(ctx context.Context, input MovementInput) (*Result, error) {
	// Validaciones baratas antes de tocar la BD: cantidad positiva y tipo conocido.
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	movType, err := entity.ParseMovementType(input.Type)
	if err != nil {
		return nil, err
	}
	if input.VariantSKU == "" || input.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Resolver variante y almacén antes de adquirir ningún bloqueo.
	variant, err := uc.variantRepo.GetBySKU(input.VariantSKU)
	if err != nil {
		return nil, fmt.Errorf("resolver variante: %w", err)
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("resolver almacén: %w", err)
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var (
		movement *entity.Movement
		line     *entity.StockLine
	)

	// Transacción: bloqueo de fila, cálculo, y las dos escrituras juntas.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquea la fila en stock_lines (SELECT FOR UPDATE). Si no existe aún,
		// el repo devuelve una línea a cero y el Upsert posterior la crea bajo
		// este mismo bloqueo, así dos primeros-movimientos concurrentes se
		// serializan en vez de duplicar la fila.
		current, err := stockRepo.GetForUpdate(variant.ID, input.WarehouseID)
		if err != nil {
			return err
		}

		newQty := current.Quantity + movType.Sign()*input.Quantity
		if newQty < 0 {
			return &domain.InsufficientStockError{
				Current:   current.Quantity,
				Requested: input.Quantity,
			}
		}

		current.Quantity = newQty
		current.UpdatedAt = now
		if err := stockRepo.Upsert(current); err != nil {
			return err
		}

		movement = buildMovement(variant, input, movType, newQty, now)
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		line = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fuera de la transacción: aviso asíncrono. Un fallo aquí jamás revierte
	// ni reintenta el movimiento; solo se loguea.
	uc.dispatchNotification(movement, variant.SKU, warehouse.Description)

	return &Result{
		Movement:      movement,
		Stock:         line,
		SKU:           variant.SKU,
		WarehouseDesc: warehouse.Description,
	}, nil
}

// buildMovement arma el registro de auditoría con la lógica de precios:
// precio manual si viene en el request, si no el de la variante; los totales
// son unitario × cantidad, con 0 cuando no hay unitario.
func buildMovement(variant *entity.Variant, input MovementInput, movType entity.MovementType, resultingQty int, now time.Time) *entity.Movement {
	unitPurchase := input.UnitPurchasePrice
	if unitPurchase == nil {
		unitPurchase = variant.PurchasePrice
	}
	unitSale := input.UnitSalePrice
	if unitSale == nil {
		unitSale = variant.SalePrice
	}

	qty := decimal.NewFromInt(int64(input.Quantity))
	totalPurchase := decimal.Zero
	if unitPurchase != nil {
		totalPurchase = unitPurchase.Mul(qty)
	}
	totalSale := decimal.Zero
	if unitSale != nil {
		totalSale = unitSale.Mul(qty)
	}

	return &entity.Movement{
		VariantID:         variant.ID,
		WarehouseID:       input.WarehouseID,
		Type:              movType,
		Quantity:          input.Quantity,
		ResultingQuantity: resultingQty,
		Notes:             input.Notes,
		UnitPurchasePrice: unitPurchase,
		UnitSalePrice:     unitSale,
		TotalPurchase:     totalPurchase,
		TotalSale:         totalSale,
		CreatedAt:         now,
		CreatedBy:         input.CreatedBy,
	}
}

// dispatchNotification envía el aviso en una goroutine y traga el error.
func (uc *UseCase) dispatchNotification(m *entity.Movement, sku, warehouseDesc string) {
	if uc.notifier == nil {
		return
	}
	n := MovementNotification{
		SKU:           sku,
		WarehouseDesc: warehouseDesc,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		ResultingQty:  m.ResultingQuantity,
		CreatedBy:     m.CreatedBy,
	}
	go func() {
		if err := uc.notifier.NotifyMovement("Nuevo movimiento registrado", n); err != nil {
			uc.log.Warn().Err(err).
				Str("sku", n.SKU).
				Str("tipo", n.Type).
				Msg("no se pudo enviar la notificación de movimiento")
		}
	}()
}
