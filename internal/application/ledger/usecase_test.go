package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattscycling/warehouse-api/internal/application/ledger"
	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
	"github.com/wattscycling/warehouse-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memTxRunner reproduce el contrato del TxRunner real: serializa las
// transacciones con un mutex y solo aplica las escrituras si fn termina sin
// error (commit); si fn falla, lo escrito en la tx se descarta (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	mu        sync.Mutex
	stock     map[string]*entity.StockLine // clave variantID|warehouseID
	movements []*entity.Movement
}

func newMemDB() *memDB {
	return &memDB{stock: make(map[string]*entity.StockLine)}
}

func stockKey(variantID, warehouseID string) string {
	return variantID + "|" + warehouseID
}

// seed fija el stock inicial de una línea sin pasar por el motor.
func (db *memDB) seed(variantID, warehouseID string, qty int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.stock[stockKey(variantID, warehouseID)] = &entity.StockLine{
		VariantID:   variantID,
		WarehouseID: warehouseID,
		Quantity:    qty,
	}
}

func (db *memDB) quantity(variantID, warehouseID string) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	if line, ok := db.stock[stockKey(variantID, warehouseID)]; ok {
		return line.Quantity
	}
	return 0
}

func (db *memDB) movementCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.movements)
}

type memTx struct {
	db          *memDB
	stagedStock map[string]*entity.StockLine
	stagedMovs  []*entity.Movement
}

type memTxRunner struct {
	db *memDB
	// createErr simula un fallo al escribir el movimiento dentro de la tx.
	createErr error
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tx := &memTx{db: r.db, stagedStock: make(map[string]*entity.StockLine)}
	if err := fn(&memMovementRepo{tx: tx, createErr: r.createErr}, &memStockRepo{tx: tx}); err != nil {
		return err // rollback: lo staged se descarta
	}
	for k, line := range tx.stagedStock {
		r.db.stock[k] = line
	}
	r.db.movements = append(r.db.movements, tx.stagedMovs...)
	return nil
}

type memStockRepo struct{ tx *memTx }

func (r *memStockRepo) Get(variantID, warehouseID string) (*entity.StockLine, error) {
	return r.GetForUpdate(variantID, warehouseID)
}

func (r *memStockRepo) GetForUpdate(variantID, warehouseID string) (*entity.StockLine, error) {
	key := stockKey(variantID, warehouseID)
	if line, ok := r.tx.stagedStock[key]; ok {
		cp := *line
		return &cp, nil
	}
	if line, ok := r.tx.db.stock[key]; ok {
		cp := *line
		return &cp, nil
	}
	// Línea ausente: a cero, sin crearla todavía.
	return &entity.StockLine{VariantID: variantID, WarehouseID: warehouseID}, nil
}

func (r *memStockRepo) Upsert(line *entity.StockLine) error {
	cp := *line
	r.tx.stagedStock[stockKey(line.VariantID, line.WarehouseID)] = &cp
	return nil
}

func (r *memStockRepo) TotalQuantity(variantID string) (int, error) {
	total := 0
	for _, line := range r.tx.db.stock {
		if line.VariantID == variantID {
			total += line.Quantity
		}
	}
	return total, nil
}

func (r *memStockRepo) ListByWarehouse(string, repository.StockFilter, int, int) ([]*repository.StockItem, error) {
	return nil, nil
}

type memMovementRepo struct {
	tx        *memTx
	createErr error
}

func (r *memMovementRepo) Create(m *entity.Movement) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *m
	r.tx.stagedMovs = append(r.tx.stagedMovs, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(string) (*repository.MovementDetail, error) { return nil, nil }
func (r *memMovementRepo) List(repository.MovementFilter, int, int) ([]*repository.MovementDetail, error) {
	return nil, nil
}
func (r *memMovementRepo) Count(repository.MovementFilter) (int, error) { return 0, nil }
func (r *memMovementRepo) ListByVariant(string, int, int) ([]*repository.MovementDetail, error) {
	return nil, nil
}
func (r *memMovementRepo) ListAll(repository.MovementFilter) ([]*repository.MovementDetail, error) {
	return nil, nil
}

// Catálogo fijo para los tests.

type memVariantRepo struct {
	bySKU map[string]*entity.Variant
}

func (r *memVariantRepo) GetByID(id string) (*entity.Variant, error) {
	for _, v := range r.bySKU {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}
func (r *memVariantRepo) GetBySKU(sku string) (*entity.Variant, error) { return r.bySKU[sku], nil }
func (r *memVariantRepo) Create(*entity.Variant) error                 { return nil }
func (r *memVariantRepo) Update(*entity.Variant) error                 { return nil }
func (r *memVariantRepo) ListByProduct(string, bool, int, int) ([]*entity.Variant, error) {
	return nil, nil
}
func (r *memVariantRepo) SetActive(string, bool) error { return nil }

type memWarehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.byID[id], nil }
func (r *memWarehouseRepo) GetByCode(string) (*entity.Warehouse, error) { return nil, nil }
func (r *memWarehouseRepo) Create(*entity.Warehouse) error              { return nil }
func (r *memWarehouseRepo) Update(*entity.Warehouse) error              { return nil }
func (r *memWarehouseRepo) List(repository.TextFilter, repository.TextFilter, bool, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *memWarehouseRepo) SetActive(string, bool) error { return nil }

// memNotifier registra las notificaciones enviadas (el motor las dispara en goroutine).
type memNotifier struct {
	mu    sync.Mutex
	calls []ledger.MovementNotification
}

func (n *memNotifier) NotifyMovement(_ string, notif ledger.MovementNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notif)
	return nil
}

func (n *memNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	variantID   = "var-1"
	variantSKU  = "MAIL01-M-AZU"
	warehouseID = "wh-1"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type fixture struct {
	db       *memDB
	runner   *memTxRunner
	notifier *memNotifier
	uc       *ledger.UseCase
}

func newFixture(variant *entity.Variant) *fixture {
	db := newMemDB()
	runner := &memTxRunner{db: db}
	notifier := &memNotifier{}

	if variant == nil {
		variant = &entity.Variant{ID: variantID, SKU: variantSKU, Active: true}
	}
	variants := &memVariantRepo{bySKU: map[string]*entity.Variant{variant.SKU: variant}}
	warehouses := &memWarehouseRepo{byID: map[string]*entity.Warehouse{
		warehouseID: {ID: warehouseID, Code: "CEN", Description: "Almacén Central", Active: true},
	}}

	uc := ledger.NewUseCase(runner, variants, warehouses, notifier, logger.Nop())
	return &fixture{db: db, runner: runner, notifier: notifier, uc: uc}
}

func input(movType string, qty int) ledger.MovementInput {
	return ledger.MovementInput{
		VariantSKU:  variantSKU,
		WarehouseID: warehouseID,
		Quantity:    qty,
		Type:        movType,
		CreatedBy:   "maria",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

// El primer movimiento sobre un par (variante, almacén) crea la línea de stock.
func TestApplyMovement_EntradaCreaLineaPerezosamente(t *testing.T) {
	f := newFixture(nil)

	res, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypePurchase, 20))
	require.NoError(t, err)

	assert.Equal(t, 20, res.Stock.Quantity)
	assert.Equal(t, 20, res.Movement.ResultingQuantity)
	assert.Equal(t, variantSKU, res.SKU)
	assert.Equal(t, "Almacén Central", res.WarehouseDesc)
	assert.Equal(t, 20, f.db.quantity(variantID, warehouseID))
	assert.Equal(t, 1, f.db.movementCount())
}

func TestApplyMovement_SalidaRestaStock(t *testing.T) {
	f := newFixture(nil)
	f.db.seed(variantID, warehouseID, 20)

	res, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypeSale, 5))
	require.NoError(t, err)

	assert.Equal(t, 15, res.Stock.Quantity)
	assert.Equal(t, 15, res.Movement.ResultingQuantity)
	assert.Equal(t, 15, f.db.quantity(variantID, warehouseID))
}

// Una salida mayor que el stock disponible se rechaza entera, sin entrega parcial.
func TestApplyMovement_StockInsuficiente(t *testing.T) {
	f := newFixture(nil)
	f.db.seed(variantID, warehouseID, 15)

	_, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypeSale, 50))
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 15, insufficient.Current)
	assert.Equal(t, 50, insufficient.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada cambió: ni stock ni libro de movimientos.
	assert.Equal(t, 15, f.db.quantity(variantID, warehouseID))
	assert.Equal(t, 0, f.db.movementCount())
}

// Sacar exactamente el stock disponible deja la línea a cero: cero es válido.
func TestApplyMovement_SalidaHastaCero(t *testing.T) {
	f := newFixture(nil)
	f.db.seed(variantID, warehouseID, 7)

	res, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypeOutboundGift, 7))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Stock.Quantity)
}

// Una salida sobre una línea inexistente es stock insuficiente (0 disponible).
func TestApplyMovement_SalidaSinLinea(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypeSale, 1))
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Current)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_CantidadInvalida(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypePurchase, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.ApplyMovement(context.Background(), input(entity.MovementTypePurchase, -3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_TipoDesconocido(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.ApplyMovement(context.Background(), input("TRANSFER", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_VarianteInexistente(t *testing.T) {
	f := newFixture(nil)
	in := input(entity.MovementTypePurchase, 1)
	in.VariantSKU = "NO-EXISTE"

	_, err := f.uc.ApplyMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyMovement_AlmacenInexistente(t *testing.T) {
	f := newFixture(nil)
	in := input(entity.MovementTypePurchase, 1)
	in.WarehouseID = "wh-fantasma"

	_, err := f.uc.ApplyMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precios
// ──────────────────────────────────────────────────────────────────────────────

// El precio manual del request tiene prioridad sobre el configurado en la variante.
func TestApplyMovement_PrecioManualPrevalece(t *testing.T) {
	variant := &entity.Variant{
		ID: variantID, SKU: variantSKU, Active: true,
		PurchasePrice: dec("3.00"),
	}
	f := newFixture(variant)

	in := input(entity.MovementTypePurchase, 10)
	in.UnitPurchasePrice = dec("2.50")

	res, err := f.uc.ApplyMovement(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, res.Movement.UnitPurchasePrice)
	assert.True(t, res.Movement.UnitPurchasePrice.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, res.Movement.TotalPurchase.Equal(decimal.RequireFromString("25.00")),
		"total = precio manual × cantidad")
}

// Sin precio manual se usa el configurado en la variante.
func TestApplyMovement_PrecioDeVarianteComoFallback(t *testing.T) {
	variant := &entity.Variant{
		ID: variantID, SKU: variantSKU, Active: true,
		SalePrice: dec("3.00"),
	}
	f := newFixture(variant)
	f.db.seed(variantID, warehouseID, 50)

	res, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypeSale, 10))
	require.NoError(t, err)

	require.NotNil(t, res.Movement.UnitSalePrice)
	assert.True(t, res.Movement.TotalSale.Equal(decimal.RequireFromString("30.00")))
}

// Sin precio por ningún lado los unitarios quedan nil y los totales a cero.
func TestApplyMovement_SinPreciosTotalesACero(t *testing.T) {
	f := newFixture(nil)

	res, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypePurchase, 10))
	require.NoError(t, err)

	assert.Nil(t, res.Movement.UnitPurchasePrice)
	assert.Nil(t, res.Movement.UnitSalePrice)
	assert.True(t, res.Movement.TotalPurchase.IsZero())
	assert.True(t, res.Movement.TotalSale.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad y concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Si falla la escritura del movimiento, la mutación de stock también se revierte.
func TestApplyMovement_FalloEnMovimientoRevierteStock(t *testing.T) {
	f := newFixture(nil)
	f.db.seed(variantID, warehouseID, 10)
	f.runner.createErr = errors.New("disco lleno")

	_, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypeSale, 3))
	require.Error(t, err)

	assert.Equal(t, 10, f.db.quantity(variantID, warehouseID), "el stock no debe cambiar")
	assert.Equal(t, 0, f.db.movementCount())
}

// Dos salidas concurrentes de la última unidad: exactamente una gana.
func TestApplyMovement_ConcurrenciaUltimaUnidad(t *testing.T) {
	f := newFixture(nil)
	f.db.seed(variantID, warehouseID, 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.ApplyMovement(context.Background(), input(entity.MovementTypeSale, 1))
		}(i)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, okCount, "solo una de las dos salidas debe aceptarse")
	assert.Equal(t, 0, f.db.quantity(variantID, warehouseID))
	assert.Equal(t, 1, f.db.movementCount())
}

// Tras una secuencia de movimientos, el stock es la suma de entradas menos salidas
// y cada movimiento llevó la foto correcta del stock resultante.
func TestApplyMovement_ConservacionDeCantidades(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	seq := []struct {
		movType string
		qty     int
	}{
		{entity.MovementTypePurchase, 30},
		{entity.MovementTypeSale, 12},
		{entity.MovementTypeManufacturing, 5},
		{entity.MovementTypeOutboundDefect, 2},
		{entity.MovementTypeReturn, 1},
	}

	expected := 0
	for _, step := range seq {
		res, err := f.uc.ApplyMovement(ctx, input(step.movType, step.qty))
		require.NoError(t, err)

		mt, _ := entity.ParseMovementType(step.movType)
		expected += mt.Sign() * step.qty
		assert.Equal(t, expected, res.Movement.ResultingQuantity)
	}

	assert.Equal(t, 22, f.db.quantity(variantID, warehouseID))
	assert.Equal(t, len(seq), f.db.movementCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones
// ──────────────────────────────────────────────────────────────────────────────

// El aviso se envía tras el commit, de forma asíncrona.
func TestApplyMovement_NotificaTrasCommit(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypePurchase, 4))
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return f.notifier.count() == 1 },
		time.Second, 10*time.Millisecond, "debe llegar exactamente una notificación")

	f.notifier.mu.Lock()
	defer f.notifier.mu.Unlock()
	n := f.notifier.calls[0]
	assert.Equal(t, variantSKU, n.SKU)
	assert.Equal(t, "Almacén Central", n.WarehouseDesc)
	assert.Equal(t, 4, n.Quantity)
	assert.Equal(t, 4, n.ResultingQty)
	assert.Equal(t, "maria", n.CreatedBy)
}

// Un movimiento rechazado no genera notificación.
func TestApplyMovement_SinNotificacionSiFalla(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.ApplyMovement(context.Background(), input(entity.MovementTypeSale, 9))
	require.Error(t, err)

	// Margen corto para detectar un envío indebido.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, f.notifier.count())
}
