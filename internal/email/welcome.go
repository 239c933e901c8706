package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htemplate "html/template"
	ttemplate "text/template"

	"github.com/rengifo/usermanager/internal/observability/logger"
)

var (
	ErrTemplateRender = errors.New("email: template render failed")
	ErrSendFailed     = errors.New("email: send failed")
)

const (
	defaultWelcomeHTML = `<p>Hi {{.Email}},</p><p>Welcome to {{.AppName}}! Your account is ready.</p>`
	defaultWelcomeText = "Hi {{.Email}},\n\nWelcome to {{.AppName}}! Your account is ready.\n"
)

// WelcomeVars son las variables de los templates de bienvenida.
type WelcomeVars struct {
	Email   string
	AppName string
}

// WelcomeConfig configura un WelcomeNotifier. Templates vacíos usan los defaults.
type WelcomeConfig struct {
	AppName  string
	Subject  string
	HTMLTmpl string
	TextTmpl string
}

// WelcomeNotifier renderiza el email de bienvenida y lo envía vía Sender.
type WelcomeNotifier struct {
	sender  Sender
	appName string
	subject string
	html    *htemplate.Template
	text    *ttemplate.Template
}

// NewWelcomeNotifier compila los templates. Falla si alguno no parsea.
func NewWelcomeNotifier(sender Sender, cfg WelcomeConfig) (*WelcomeNotifier, error) {
	if sender == nil {
		return nil, fmt.Errorf("email: sender is required")
	}
	if cfg.HTMLTmpl == "" {
		cfg.HTMLTmpl = defaultWelcomeHTML
	}
	if cfg.TextTmpl == "" {
		cfg.TextTmpl = defaultWelcomeText
	}
	if cfg.Subject == "" {
		cfg.Subject = "Welcome!"
	}

	h, err := htemplate.New("welcome_html").Parse(cfg.HTMLTmpl)
	if err != nil {
		return nil, fmt.Errorf("parse welcome HTML template: %w", err)
	}
	t, err := ttemplate.New("welcome_text").Parse(cfg.TextTmpl)
	if err != nil {
		return nil, fmt.Errorf("parse welcome text template: %w", err)
	}

	return &WelcomeNotifier{
		sender:  sender,
		appName: cfg.AppName,
		subject: cfg.Subject,
		html:    h,
		text:    t,
	}, nil
}

func (n *WelcomeNotifier) SendWelcomeEmail(ctx context.Context, email string) error {
	log := logger.From(ctx).With(logger.Component("WelcomeNotifier"), logger.Email(email))

	vars := WelcomeVars{Email: email, AppName: n.appName}
	var hb, tb bytes.Buffer
	if err := n.html.Execute(&hb, vars); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	if err := n.text.Execute(&tb, vars); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	if err := n.sender.Send(email, n.subject, hb.String(), tb.String()); err != nil {
		log.Warn("welcome email failed", logger.Err(err))
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	log.Info("welcome email sent")
	return nil
}
