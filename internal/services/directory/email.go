package directory

import (
	"strings"

	"golang.org/x/net/publicsuffix"

	"contactrouter/internal/domain"
)

var genericMailboxes = []string{"info@", "admin@", "contact@", "support@", "helpdesk@", "email@"}

// EmailDomain returns the registrable domain of addr ("mail.sbi.co.in" ->
// "sbi.co.in"), or the bare host when the public suffix list has no answer.
func EmailDomain(addr string) string {
	at := strings.LastIndexByte(addr, '@')
	if at < 0 {
		return ""
	}
	host := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(addr[at+1:])), ".")
	if host == "" {
		return ""
	}
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld1
	}
	return host
}

// ClassifyEmail buckets an address the way the routing features do.
func ClassifyEmail(addr string) domain.EmailType {
	a := strings.ToLower(strings.TrimSpace(addr))
	switch {
	case a == "":
		return domain.EmailMissing
	case hasAny(a, genericMailboxes...):
		return domain.EmailGeneric
	case strings.Contains(a, "@gmail"):
		return domain.EmailPersonalGmail
	case hasAny(a, "@yahoo", "@rediff", "@hotmail"):
		return domain.EmailPersonalOther
	default:
		return domain.EmailCorporate
	}
}

func hasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
