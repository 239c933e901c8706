package util

import "strings"

// MaskEmail oculta la mayor parte del email para logs:
// "example@domain.com" -> "e…@d….com". Sin "@" deja solo extremos.
func MaskEmail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	i := strings.LastIndexByte(s, '@')
	if i <= 0 {
		return maskPart(s)
	}
	local, dom := s[:i], s[i+1:]

	dparts := strings.Split(dom, ".")
	dparts[0] = maskPart(dparts[0])
	return maskPart(local) + "@" + strings.Join(dparts, ".")
}

func maskPart(p string) string {
	r := []rune(p)
	switch {
	case len(r) == 0:
		return ""
	case len(r) <= 3:
		return string(r[:1]) + "…"
	default:
		return string(r[:1]) + "…" + string(r[len(r)-1:])
	}
}
