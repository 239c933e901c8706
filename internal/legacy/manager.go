// Package legacy conserva la versión "god class" del alta de usuarios:
// validación, persistencia y notificación mezcladas en un solo tipo.
// Se mantiene para contrastarla con internal/users.
package legacy

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"unicode/utf16"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@([^\n\r\x{85}\x{2028}\x{2029}]+)$`)

// UserManager valida, guarda e informa por su cuenta.
type UserManager struct {
	out io.Writer
}

// NewUserManager escribe en w; nil usa os.Stdout.
func NewUserManager(w io.Writer) *UserManager {
	if w == nil {
		w = os.Stdout
	}
	return &UserManager{out: w}
}

// AddUser reporta si el usuario fue agregado.
func (m *UserManager) AddUser(email, password string) bool {
	if m.isValidEmail(email) && m.isValidPassword(password) {
		m.saveToDatabase(email, password)
		m.sendWelcomeEmail(email)
		return true
	}
	fmt.Fprintln(m.out, " Invalid email or password. User not added.")
	return false
}

func (m *UserManager) isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func (m *UserManager) isValidPassword(password string) bool {
	return len(utf16.Encode([]rune(password))) >= 8
}

func (m *UserManager) saveToDatabase(email, password string) {
	fmt.Fprintln(m.out, " Saving user to the database...")
	fmt.Fprintln(m.out, " Email: "+email)
	fmt.Fprintln(m.out, " Password: "+password)
}

func (m *UserManager) sendWelcomeEmail(email string) {
	fmt.Fprintln(m.out, " Sending welcome email to "+email)
}
