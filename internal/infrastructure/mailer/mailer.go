package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/wattscycling/warehouse-api/internal/application/ledger"
	"github.com/wattscycling/warehouse-api/pkg/config"
	"github.com/wattscycling/warehouse-api/pkg/logger"
)

// Ensure MovementMailer implements ledger.Notifier.
var _ ledger.Notifier = (*MovementMailer)(nil)

// MovementMailer envía por SMTP el aviso de cada movimiento registrado.
// Best-effort: el motor de movimientos lo invoca ya fuera de la transacción.
type MovementMailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewMovementMailer construye el mailer.
func NewMovementMailer(cfg config.SMTPConfig, log *logger.Logger) *MovementMailer {
	return &MovementMailer{cfg: cfg, log: log}
}

// NotifyMovement envía el resumen del movimiento a los destinatarios configurados.
// Sin SMTP configurado se omite el envío con un warning, sin error.
func (m *MovementMailer) NotifyMovement(subject string, n ledger.MovementNotification) error {
	if !m.cfg.Enabled() {
		m.log.Warn().Msg("servicio de correo no configurado; se omite la notificación de movimiento")
		return nil
	}

	body := fmt.Sprintf(`
		<h3>Nuevo movimiento de stock</h3>
		<p><b>SKU:</b> %s</p>
		<p><b>Almacén:</b> %s</p>
		<p><b>Tipo:</b> %s</p>
		<p><b>Cantidad:</b> %d</p>
		<p><b>Stock resultante:</b> %d</p>
		<p><b>Registrado por:</b> %s</p>`,
		n.SKU, n.WarehouseDesc, n.Type, n.Quantity, n.ResultingQty, n.CreatedBy)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.Recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo de movimiento: %w", err)
	}
	return nil
}
