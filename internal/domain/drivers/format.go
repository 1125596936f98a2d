package drivers

import (
	"strings"
	"unicode"
)

func alnumUpper(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPlate приводит номер к виду ABCD-12.
func FormatPlate(v string) string {
	clean := []rune(alnumUpper(v))
	if len(clean) > 6 {
		clean = clean[:6]
	}
	if len(clean) > 4 {
		return string(clean[:4]) + "-" + string(clean[4:])
	}
	return string(clean)
}

// FormatID: для Nacional вид 12345678-9, для Extranjero только A-Z0-9.
func FormatID(v string, t IDType) string {
	clean := []rune(alnumUpper(v))
	if t == IDForeign {
		return string(clean)
	}
	if len(clean) > 9 {
		clean = clean[:9]
	}
	if len(clean) > 8 {
		return string(clean[:8]) + "-" + string(clean[8:])
	}
	return string(clean)
}

// ProperCase: "juan PEREZ" -> "Juan Perez".
func ProperCase(v string) string {
	if v == "" {
		return ""
	}
	words := strings.Split(v, " ")
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		if len(r) == 0 {
			continue
		}
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
