// Package email implementa el envío del email de bienvenida.
//
//	UserManager ──► NotificationService
//	                 ├─ ConsoleNotifier   (default: imprime el aviso)
//	                 └─ WelcomeNotifier ──► Sender (SMTPSender, go-mail)
package email
