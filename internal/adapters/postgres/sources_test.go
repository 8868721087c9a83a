package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"contactrouter/internal/domain"
)

func TestBankContactsQuery(t *testing.T) {
	q := bankContactsQuery()
	assert.True(t, strings.HasPrefix(q, "SELECT id, COALESCE(bank_name, ''), COALESCE(gm_head_name, '')"))
	assert.Contains(t, q, "COALESCE(tech_level2_email, '') FROM bank_contacts")
	assert.Equal(t, 1+3*len(domain.ContactRoles), strings.Count(q, "COALESCE("))
}

func TestSEBIEntitiesQuery(t *testing.T) {
	q := sebiEntitiesQuery()
	assert.Contains(t, q, "COALESCE(registration_no, '')")
	assert.Contains(t, q, "COALESCE(country, '') FROM sebi_entities ORDER BY row_order")
}

func TestBankEntityFromCells(t *testing.T) {
	cells := make([]string, 1+3*len(domain.ContactRoles))
	cells[0] = " Sample Bank "
	// gm_head is the first role triple, level1 the second
	cells[1] = "Meera"
	cells[4], cells[5], cells[6] = "Asha", "9999999999", "a@x.com"

	e := bankEntityFromCells(7, cells)
	assert.Equal(t, domain.EntityID(7), e.ID)
	assert.Equal(t, "Sample Bank", e.Name)
	assert.Equal(t, domain.Contact{Name: "Meera"}, e.Contact(domain.HeadGM))
	assert.Equal(t, domain.Contact{Name: "Asha", Phone: "9999999999", Email: "a@x.com"}, e.Contact(domain.Level1))
	assert.NotContains(t, e.Contacts, domain.Level2)
}
