package ledger

import (
	"context"

	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la línea de stock y el movimiento se escriben
// como una unidad atómica: o las dos escrituras o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// MovementNotification resumen de un movimiento para el aviso por correo.
type MovementNotification struct {
	SKU           string
	WarehouseDesc string
	Type          string
	Quantity      int
	ResultingQty  int
	CreatedBy     string
}

// Notifier envía el aviso de movimiento a los interesados. Best-effort: el motor
// lo invoca fuera de la transacción y descarta el error tras loguearlo.
type Notifier interface {
	NotifyMovement(subject string, n MovementNotification) error
}
