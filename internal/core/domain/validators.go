package domain

import (
	"regexp"
	"strings"
	"time"
)

// Date layouts used across the entities.
const (
	LayoutData     = "2006-01-02"
	LayoutDataHora = "2006-01-02 15:04:05"
)

var (
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	telefoneRegex = regexp.MustCompile(`^[\d\-\s()+]+$`)
)

// SomenteDigitos strips everything but decimal digits from s.
func SomenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether s contains exactly 11 digits after stripping
// formatting and the digits are not all identical ("111.111.111-11" is a
// well-known invalid CPF shape).
func ValidCPF(s string) bool {
	digits := SomenteDigitos(s)
	if len(digits) != 11 {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return true
		}
	}
	return false
}

// ValidCNH reports whether s contains exactly 11 digits after normalization.
func ValidCNH(s string) bool {
	return len(SomenteDigitos(s)) == 11
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidTelefone reports whether s is non-empty and contains only digits,
// spaces, dashes, parentheses and plus signs.
func ValidTelefone(s string) bool {
	return s != "" && telefoneRegex.MatchString(s)
}

// ValidData reports whether s parses under the given layout.
func ValidData(s, layout string) bool {
	_, err := time.Parse(layout, s)
	return err == nil
}

// ValidNota reports whether n is a rating score in [1, 5].
func ValidNota(n float64) bool {
	return n >= 1 && n <= 5
}

// ValidTaxa reports whether n is a percentage in [0, 100].
func ValidTaxa(n float64) bool {
	return n >= 0 && n <= 100
}
