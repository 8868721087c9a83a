package files

import (
	"strconv"
	"strings"
)

// normalizePhone keeps digits only and trims to the trailing ten, which
// drops a leading 91 or 0 trunk prefix. Empty and "0" mean no phone.
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	// numeric cells exported as floats
	raw = strings.TrimSuffix(raw, ".0")
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" || digits == "0" {
		return ""
	}
	if len(digits) >= 10 {
		return digits[len(digits)-10:]
	}
	return digits
}

// normalizeEmail lower-cases and keeps the first of a comma-separated list.
// Values without an @ are dropped.
func normalizeEmail(raw string) string {
	e := strings.ToLower(strings.TrimSpace(raw))
	if !strings.Contains(e, "@") {
		return ""
	}
	if first, _, ok := strings.Cut(e, ","); ok {
		return strings.TrimSpace(first)
	}
	return e
}

// parseID reads an integer id that may have been stored as a float cell.
func parseID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}
