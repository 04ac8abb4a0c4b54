package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wattscycling/warehouse-api/internal/domain"
)

// Tipos de movimiento de stock. Las salidas restan y las entradas suman;
// la polaridad vive en Sign() para que añadir un tipo sea un cambio en un solo sitio.
const (
	MovementTypeSale           = "SALE"                  // venta
	MovementTypeOutboundDefect = "OUTBOUND_DEFECT"       // salida por defecto de fábrica
	MovementTypeOutboundGift   = "OUTBOUND_GIFT"         // salida por regalo/promoción
	MovementTypePurchase       = "PURCHASE"              // compra a proveedor
	MovementTypeManufacturing  = "INBOUND_MANUFACTURING" // entrada por fabricación propia
	MovementTypeReturn         = "INBOUND_RETURN"        // entrada por devolución
)

// MovementType clasifica un movimiento de stock y su polaridad.
type MovementType string

// ParseMovementType valida el string recibido por la API.
func ParseMovementType(s string) (MovementType, error) {
	switch s {
	case MovementTypeSale, MovementTypeOutboundDefect, MovementTypeOutboundGift,
		MovementTypePurchase, MovementTypeManufacturing, MovementTypeReturn:
		return MovementType(s), nil
	}
	return "", domain.ErrInvalidInput
}

// Sign devuelve -1 para salidas y +1 para entradas.
func (t MovementType) Sign() int {
	switch string(t) {
	case MovementTypeSale, MovementTypeOutboundDefect, MovementTypeOutboundGift:
		return -1
	default:
		return +1
	}
}

// Outbound indica si el tipo resta stock.
func (t MovementType) Outbound() bool {
	return t.Sign() < 0
}

// Movement es el registro inmutable de auditoría de un movimiento aceptado.
// Se crea exactamente una vez, en la misma transacción que la mutación del
// stock, y nunca se modifica ni se borra.
type Movement struct {
	ID                string
	VariantID         string
	WarehouseID       string
	Type              MovementType
	Quantity          int // cantidad siempre positiva; el tipo decide el signo
	ResultingQuantity int // stock de la línea justo después del movimiento
	Notes             string
	UnitPurchasePrice *decimal.Decimal // nil si ni el request ni la variante tienen precio
	UnitSalePrice     *decimal.Decimal
	TotalPurchase     decimal.Decimal // 0 si el unitario es nil
	TotalSale         decimal.Decimal
	CreatedAt         time.Time
	CreatedBy         string // username del actor
}
