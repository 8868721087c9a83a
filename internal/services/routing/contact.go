package routing

import (
	"strings"

	"contactrouter/internal/domain"
)

// ProjectBankContact renders the slot for level, substituting NotAvailable
// field by field.
func ProjectBankContact(e domain.BankEntity, level domain.EscalationLevel) domain.Contact {
	c := e.Contact(level)
	return domain.Contact{
		Name:  orNotAvailable(c.Name),
		Phone: orNotAvailable(c.Phone),
		Email: orNotAvailable(c.Email),
	}
}

// SEBIReachability returns the email and phone to use for an intermediary:
// the primary value, or the secondary one when the primary is blank. The
// secondary values apply whether or not a secondary address is on file.
// Results may be blank; callers substitute at render time.
func SEBIReachability(e domain.SEBIEntity) (email, phone string) {
	secondEmail, secondPhone := e.SecondaryEmail, e.SecondaryTelephone
	if e.Secondary != nil {
		secondEmail = firstNonBlank(secondEmail, e.Secondary.Email)
		secondPhone = firstNonBlank(secondPhone, e.Secondary.Telephone)
	}
	return firstNonBlank(e.Primary.Email, secondEmail), firstNonBlank(e.Primary.Telephone, secondPhone)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func orNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return domain.NotAvailable
	}
	return v
}
