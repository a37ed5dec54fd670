package ports

// AlertMailer define el puerto de salida hacia el relay de correo.
// Un solo intento por invocación, sin reintentos; la implementación debe
// devolver domain.ErrNotificationFailed envolviendo la causa ante
// cualquier fallo de conexión, autenticación o envío.
type AlertMailer interface {
	Send(subject, body string) error
}
