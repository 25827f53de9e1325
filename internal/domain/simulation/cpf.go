package simulation

import "strings"

// CleanDigits keeps only the ASCII digits of raw.
func CleanDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ValidCPF applies the modulo-11 check digit algorithm. Formatting characters
// are stripped first, so "111.444.777-35" and "11144477735" are equivalent.
func ValidCPF(raw string) bool {
	d := CleanDigits(raw)
	if len(d) != 11 || strings.Count(d, d[:1]) == 11 {
		return false
	}
	first := cpfCheckDigit(d[:9])
	second := cpfCheckDigit(d[:9] + string(rune('0'+first)))
	return d[9] == byte('0'+first) && d[10] == byte('0'+second)
}

// weights run from len(digits)+1 down to 2
func cpfCheckDigit(digits string) int {
	sum := 0
	weight := len(digits) + 1
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}
	r := (sum * 10) % 11
	if r >= 10 {
		return 0
	}
	return r
}
