package containers

import (
	"fmt"
	"strings"
)

// Таблица ISO 6346: значения букв пропускают кратные 11.
var letterValues = map[rune]int{
	'A': 10, 'B': 12, 'C': 13, 'D': 14, 'E': 15, 'F': 16, 'G': 17, 'H': 18, 'I': 19,
	'J': 20, 'K': 21, 'L': 23, 'M': 24, 'N': 25, 'O': 26, 'P': 27, 'Q': 28, 'R': 29,
	'S': 30, 'T': 31, 'U': 32, 'V': 34, 'W': 35, 'X': 36, 'Y': 37, 'Z': 38,
}

// CheckDigit считает контрольную цифру для owner+serial (ровно 10 символов).
// ok=false — цифру посчитать нельзя; это не то же самое, что 0.
func CheckDigit(prefix string) (digit int, ok bool) {
	s := strings.ToUpper(prefix)
	if len([]rune(s)) != 10 {
		return 0, false
	}
	sum := 0
	for i, r := range []rune(s) {
		v := 0
		switch {
		case i < 4:
			v = letterValues[r]
		case r >= '0' && r <= '9':
			v = int(r - '0')
		}
		sum += v * (1 << i)
	}
	return (sum % 11) % 10, true
}

// FullLoadID собирает id FCL: OWNER+SERIAL-D.
func FullLoadID(owner, serial, digit string) string {
	return strings.ToUpper(strings.TrimSpace(owner)+strings.TrimSpace(serial)) + "-" + strings.TrimSpace(digit)
}

// PartLoadID собирает синтетический id LCL: LCL-<нота>-<3 буквы клиента>.
func PartLoadID(receptionNote, client string) string {
	frag := []rune(strings.ToUpper(client))
	if len(frag) > 3 {
		frag = frag[:3]
	}
	return fmt.Sprintf("LCL-%s-%s", receptionNote, string(frag))
}

// CleanID оставляет только A-Z и 0-9.
func CleanID(id string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(id) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitID раскладывает полный id на owner, serial и цифру.
func SplitID(id string) (owner, serial, digit string) {
	clean := CleanID(id)
	if len(clean) >= 4 {
		owner = clean[:4]
	} else {
		return clean, "", ""
	}
	if len(clean) >= 10 {
		serial = clean[4:10]
	} else {
		serial = clean[4:]
	}
	if len(clean) >= 11 {
		digit = clean[10:11]
	}
	return owner, serial, digit
}

// ValidID проверяет, что id FCL имеет верную контрольную цифру.
func ValidID(id string) bool {
	owner, serial, digit := SplitID(id)
	if len(owner) != 4 || len(serial) != 6 || digit == "" {
		return false
	}
	d, ok := CheckDigit(owner + serial)
	return ok && fmt.Sprint(d) == digit
}
