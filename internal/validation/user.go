package validation

import (
	"regexp"
	"unicode/utf16"
)

// Email rules (permisivo a propósito):
//   - Parte local: 1+ chars de [A-Za-z0-9+_.-].
//   - Un "@".
//   - Dominio: 1+ chars cualesquiera salvo terminadores de línea
//     (\n \r U+0085 U+2028 U+2029); sin punto obligatorio, "a@b" es válido.
//
// Examples valid: example@domain.com, a@b, a+b@x@y
// Examples invalid: invalid-email, @domain.com, a@, "a b@c"
var emailRe = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@([^\n\r\x{85}\x{2028}\x{2029}]+)$`)

// DefaultMinPasswordLength es el largo mínimo de password por defecto.
const DefaultMinPasswordLength = 8

// ValidEmail returns true if the email matches the registration pattern.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPassword returns true if the password has at least
// DefaultMinPasswordLength characters, counted as UTF-16 code units
// (a rune outside the BMP counts as two). No charset requirements.
func ValidPassword(password string) bool {
	return validPasswordLen(password, DefaultMinPasswordLength)
}

func validPasswordLen(password string, min int) bool {
	return utf16Len(password) >= min
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// UserValidator valida un candidato (email, password).
// El zero value usa DefaultMinPasswordLength.
type UserValidator struct {
	MinPasswordLength int
}

// NewUserValidator crea un validador con el largo mínimo dado (<=0 usa el default).
func NewUserValidator(minPasswordLength int) *UserValidator {
	return &UserValidator{MinPasswordLength: minPasswordLength}
}

// ValidateEmail aplica el patrón de email.
func (v *UserValidator) ValidateEmail(email string) bool {
	return ValidEmail(email)
}

// ValidatePassword aplica la regla de largo mínimo.
func (v *UserValidator) ValidatePassword(password string) bool {
	min := DefaultMinPasswordLength
	if v != nil && v.MinPasswordLength > 0 {
		min = v.MinPasswordLength
	}
	return validPasswordLen(password, min)
}

// ValidateUser retorna true solo si email y password son válidos.
// Un candidato inválido es un resultado normal, no un error.
func (v *UserValidator) ValidateUser(email, password string) bool {
	return v.ValidateEmail(email) && v.ValidatePassword(password)
}
