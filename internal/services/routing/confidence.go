package routing

import (
	"strings"

	"contactrouter/internal/domain"
)

// BankConfidence is a fixed score per severity; it ignores data completeness.
func BankConfidence(s domain.Severity) float64 {
	switch s {
	case domain.Critical:
		return 95.0
	case domain.High:
		return 85.0
	case domain.Medium:
		return 75.0
	default:
		return 65.0
	}
}

// SEBIConfidence scores how complete the resolved contact is.
func SEBIConfidence(contactPerson, email string) float64 {
	hasPerson := strings.TrimSpace(contactPerson) != ""
	hasEmail := strings.TrimSpace(email) != ""
	switch {
	case hasPerson && hasEmail:
		return 90.0
	case hasEmail:
		return 80.0
	default:
		return 70.0
	}
}
