package validation

import (
	"strings"
	"testing"
)

func TestValidEmail_Valid(t *testing.T) {
	valids := []string{
		"example@domain.com",
		"valid@email.com",
		"a@b",     // dominio sin punto
		"a@@",     // cualquier char luego del @
		"a+tag@x", // + en la parte local
		"first.last_1-2@d",
		"a@b@c",            // el dominio acepta "@"
		"x@ spaced domain", // dominio acepta espacios
	}
	for _, v := range valids {
		if !ValidEmail(v) {
			t.Fatalf("expected valid: %q", v)
		}
	}
}

func TestValidEmail_Invalid(t *testing.T) {
	invalids := []string{
		"",
		"invalid-email", // sin @
		"@domain.com",   // parte local vacía
		"a@",            // dominio vacío
		"a b@c",         // espacio en parte local
		"ñ@c",           // fuera del charset ASCII
		"a@b\nc",        // "." no matchea salto de línea
		"a@\r",
		"a@x\u0085",
		"a@\u2028",
		"a@b\u2029c",
	}
	for _, v := range invalids {
		if ValidEmail(v) {
			t.Fatalf("expected invalid: %q", v)
		}
	}
}

func TestValidEmail_NoAtIsAlwaysInvalid(t *testing.T) {
	for _, s := range []string{"abc", "a.b.c", "+_.-", strings.Repeat("x", 300)} {
		if ValidEmail(s) {
			t.Fatalf("string without @ accepted: %q", s)
		}
	}
}

func TestValidPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"123", false},
		{"1234", false},
		{"1234567", false},
		{"12345678", true},
		{"password123", true},
		{"        ", true}, // sin reglas de charset
		{"ñññññññ", false}, // 7 runas, 14 bytes
		{"ññññññññ", true}, // 8 runas
		{"😀😀😀", false},     // 6 unidades UTF-16
		{"😀😀😀😀", true},     // 8 unidades UTF-16
	}
	for _, c := range cases {
		if got := ValidPassword(c.in); got != c.want {
			t.Fatalf("ValidPassword(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestUserValidator(t *testing.T) {
	var zero UserValidator
	if !zero.ValidateUser("example@domain.com", "password123") {
		t.Fatal("expected valid user")
	}
	if zero.ValidateUser("invalid-email", "password123") {
		t.Fatal("invalid email accepted")
	}
	if zero.ValidateUser("valid@email.com", "1234") {
		t.Fatal("short password accepted")
	}
	if zero.ValidateUser("invalid-email", "123") {
		t.Fatal("both invalid accepted")
	}

	strict := NewUserValidator(12)
	if strict.ValidatePassword("password123") {
		t.Fatal("11 chars accepted with min 12")
	}
	if !strict.ValidatePassword("password1234") {
		t.Fatal("12 chars rejected with min 12")
	}
}
