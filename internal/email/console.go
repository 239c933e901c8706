package email

import (
	"context"
	"fmt"
	"io"
)

// ConsoleNotifier "envía" el email escribiendo una línea en out.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: w}
}

// SendWelcomeEmail nunca falla.
func (n *ConsoleNotifier) SendWelcomeEmail(ctx context.Context, email string) error {
	fmt.Fprintln(n.out, "Sending welcome email to "+email)
	return nil
}
