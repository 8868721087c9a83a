package routing

import (
	"strings"

	"contactrouter/internal/domain"
)

// ResolveBankLevel evaluates the bank decision table in priority order;
// the first matching rule wins. Every (category, severity) pair resolves.
func ResolveBankLevel(category domain.IssueCategory, severity domain.Severity) domain.EscalationLevel {
	switch {
	case category == domain.TechnicalError || category == domain.DataSync:
		if severity == domain.High || severity == domain.Critical {
			return domain.TechLevel2
		}
		return domain.TechLevel1
	case category == domain.FraudAlert:
		if severity == domain.Critical {
			return domain.HeadGM
		}
		return domain.Level3
	case severity == domain.Critical:
		return domain.Level3
	case severity == domain.High:
		return domain.Level2
	default:
		return domain.Level1
	}
}

// ResolveSEBIRoute picks the route type and contact name for an
// intermediary. Only the category and the presence of a contact person
// matter.
func ResolveSEBIRoute(category domain.SEBICategory, contactPerson string) (domain.RouteType, string) {
	person := strings.TrimSpace(contactPerson)
	switch category {
	case domain.ComplianceIssues, domain.RegulatoryMatters:
		if person != "" {
			return domain.ComplianceContact, person
		}
		return domain.GeneralContact, domain.GeneralContactLabel
	default:
		if person != "" {
			return domain.CustomerSupport, person
		}
		return domain.CustomerSupport, domain.GeneralContactLabel
	}
}
