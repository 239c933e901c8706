package email

import "context"

// NotificationService avisa al usuario recién registrado.
type NotificationService interface {
	SendWelcomeEmail(ctx context.Context, email string) error
}

// Sender es la interfaz para enviar emails.
// Implementada por SMTPSender.
type Sender interface {
	// Send envía un email con contenido HTML y texto plano.
	// Si ambos están presentes se envían como multipart/alternative.
	Send(to, subject, htmlBody, textBody string) error
}
