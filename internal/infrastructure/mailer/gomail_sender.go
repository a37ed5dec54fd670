package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/nicolljireth/inventario-joyeria/internal/application/ports"
	"github.com/nicolljireth/inventario-joyeria/internal/domain"
)

// Verificar en tiempo de compilación que GomailSender implementa AlertMailer.
var _ ports.AlertMailer = (*GomailSender)(nil)

// GomailSender adaptador del puerto AlertMailer sobre un relay SMTP con
// STARTTLS y autenticación plana (dirección + contraseña de aplicación).
// Todas las credenciales llegan inyectadas; aquí no se lee configuración.
type GomailSender struct {
	dialer   *gomail.Dialer
	emisor   string
	receptor string
}

// NewGomailSender construye el adaptador. En el puerto 587 gomail negocia
// STARTTLS antes de autenticar.
func NewGomailSender(host string, port int, emisor, passwordApp, receptor string) *GomailSender {
	return &GomailSender{
		dialer:   gomail.NewDialer(host, port, emisor, passwordApp),
		emisor:   emisor,
		receptor: receptor,
	}
}

// Send entrega un mensaje de texto plano al receptor fijo. Exactamente un
// intento; cualquier fallo se devuelve como domain.ErrNotificationFailed
// con la causa, nunca como pánico.
func (s *GomailSender) Send(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.emisor)
	m.SetHeader("To", s.receptor)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}
	return nil
}
