// Package demo contiene los cuatro casos de demostración del alta de usuarios.
package demo

import (
	"context"
	"fmt"
	"io"
)

// Scenario es una llamada canned a AddUser.
type Scenario struct {
	Title    string
	Email    string
	Password string
}

// Scenarios en el orden en que se imprimen.
var Scenarios = []Scenario{
	{Title: "valid user", Email: "example@domain.com", Password: "password123"},
	{Title: "invalid email", Email: "invalid-email", Password: "password123"},
	{Title: "invalid password", Email: "valid@email.com", Password: "1234"},
	{Title: "both invalid", Email: "invalid-email", Password: "123"},
}

// AdderFunc adapta cualquier implementación de alta al runner.
type AdderFunc func(ctx context.Context, email, password string) error

// Run imprime el encabezado de cada escenario en w y ejecuta add.
// Corta en el primer error de backend.
func Run(ctx context.Context, w io.Writer, add AdderFunc) error {
	for i, s := range Scenarios {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "=== Testing with %s ===\n", s.Title)
		if err := add(ctx, s.Email, s.Password); err != nil {
			return fmt.Errorf("demo %q: %w", s.Title, err)
		}
	}
	return nil
}
