package routing

import (
	"context"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactrouter/internal/domain"
)

func TestResolveBankLevelTable(t *testing.T) {
	want := map[domain.IssueCategory]map[domain.Severity]domain.EscalationLevel{
		domain.AccountAccess:      {domain.Low: domain.Level1, domain.Medium: domain.Level1, domain.High: domain.Level2, domain.Critical: domain.Level3},
		domain.TransactionFailure: {domain.Low: domain.Level1, domain.Medium: domain.Level1, domain.High: domain.Level2, domain.Critical: domain.Level3},
		domain.CustomerService:    {domain.Low: domain.Level1, domain.Medium: domain.Level1, domain.High: domain.Level2, domain.Critical: domain.Level3},
		domain.TechnicalError:     {domain.Low: domain.TechLevel1, domain.Medium: domain.TechLevel1, domain.High: domain.TechLevel2, domain.Critical: domain.TechLevel2},
		domain.DataSync:           {domain.Low: domain.TechLevel1, domain.Medium: domain.TechLevel1, domain.High: domain.TechLevel2, domain.Critical: domain.TechLevel2},
		domain.FraudAlert:         {domain.Low: domain.Level3, domain.Medium: domain.Level3, domain.High: domain.Level3, domain.Critical: domain.HeadGM},
	}
	for _, c := range domain.IssueCategories {
		for _, s := range domain.Severities {
			got := ResolveBankLevel(c, s)
			assert.Equal(t, want[c][s], got, "%s/%s", c, s)
			assert.Equal(t, got, ResolveBankLevel(c, s), "resolution must be deterministic for %s/%s", c, s)
		}
	}
}

func TestResolveSEBIRoute(t *testing.T) {
	cases := []struct {
		name      string
		category  domain.SEBICategory
		person    string
		wantRoute domain.RouteType
		wantName  string
	}{
		{"compliance with person", domain.ComplianceIssues, "R. Iyer", domain.ComplianceContact, "R. Iyer"},
		{"regulatory without person", domain.RegulatoryMatters, "  ", domain.GeneralContact, domain.GeneralContactLabel},
		{"grievance with person", domain.ClientGrievances, "R. Iyer", domain.CustomerSupport, "R. Iyer"},
		{"advisory without person", domain.InvestmentAdvisory, "", domain.CustomerSupport, domain.GeneralContactLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			route, name := ResolveSEBIRoute(tc.category, tc.person)
			assert.Equal(t, tc.wantRoute, route)
			assert.Equal(t, tc.wantName, name)
		})
	}
}

func TestProjectBankContactSubstitutesPerField(t *testing.T) {
	e := domain.BankEntity{ID: 3, Name: "Coop Bank", Contacts: map[domain.EscalationLevel]domain.Contact{
		domain.Level2: {Name: "Vikram", Phone: " ", Email: "v@coop.example"},
	}}

	got := ProjectBankContact(e, domain.Level2)
	want := domain.Contact{Name: "Vikram", Phone: domain.NotAvailable, Email: "v@coop.example"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ProjectBankContact mismatch (-want +got):\n%s", diff)
	}

	empty := ProjectBankContact(e, domain.HeadGM)
	assert.Equal(t, domain.Contact{Name: domain.NotAvailable, Phone: domain.NotAvailable, Email: domain.NotAvailable}, empty)
}

func TestSEBIReachabilityPrefersPrimary(t *testing.T) {
	secondary := &domain.ContactBlock{Address: "22 MG Road", Email: "b@x.example", Telephone: "080111"}

	email, phone := SEBIReachability(domain.SEBIEntity{
		Primary:   domain.ContactBlock{Email: "a@x.example"},
		Secondary: secondary,
	})
	assert.Equal(t, "a@x.example", email)
	assert.Equal(t, "080111", phone, "blank primary phone falls back independently")

	email, phone = SEBIReachability(domain.SEBIEntity{Primary: domain.ContactBlock{Telephone: "022999"}})
	assert.Empty(t, email)
	assert.Equal(t, "022999", phone)
}

func TestConfidence(t *testing.T) {
	for _, c := range domain.IssueCategories {
		assert.Equal(t, 95.0, BankConfidence(domain.Critical), c)
		assert.Equal(t, 65.0, BankConfidence(domain.Low), c)
	}
	assert.Equal(t, 85.0, BankConfidence(domain.High))
	assert.Equal(t, 75.0, BankConfidence(domain.Medium))

	assert.Equal(t, 90.0, SEBIConfidence("R. Iyer", "a@x.example"))
	assert.Equal(t, 80.0, SEBIConfidence("", "a@x.example"))
	assert.Equal(t, 70.0, SEBIConfidence("R. Iyer", ""))
	assert.Equal(t, 70.0, SEBIConfidence("", ""))
}

type memStore struct {
	bank *domain.BankDataset
	sebi *domain.SEBIDataset
}

func (m memStore) Bank(context.Context) (*domain.BankDataset, error) {
	if m.bank == nil {
		return nil, domain.Unavailable("Could not load bank data", domain.LoadErrorf("missing"))
	}
	return m.bank, nil
}

func (m memStore) SEBI(context.Context) (*domain.SEBIDataset, error) {
	if m.sebi == nil {
		return nil, domain.Unavailable("SEBI data not loaded", domain.LoadErrorf("missing"))
	}
	return m.sebi, nil
}

func sampleStore() memStore {
	bank := domain.NewBankDataset([]domain.BankEntity{{
		ID:   7,
		Name: "Sample Bank",
		Contacts: map[domain.EscalationLevel]domain.Contact{
			domain.Level1:     {Name: "Asha", Phone: "9999999999", Email: "a@x.com"},
			domain.TechLevel1: {Name: "Ravi", Email: "ravi@x.com"},
		},
	}}, nil, true)
	sebi := domain.NewSEBIDataset(domain.SchemaStrict, []domain.SEBIEntity{
		{ID: 1, Name: "Alpha Advisors", RegistrationNo: "INP01", ContactPerson: "R. Iyer",
			Primary: domain.ContactBlock{Email: "ops@alpha.example", Telephone: "022111"}},
		{ID: 2, Name: "Beta Capital", RegistrationNo: "INP02",
			Primary:   domain.ContactBlock{},
			Secondary: &domain.ContactBlock{Address: "5 Park St", Email: "desk@beta.example"}},
	})
	return memStore{bank: bank, sebi: sebi}
}

func TestRouteBank(t *testing.T) {
	svc := New(sampleStore())
	ctx := context.Background()

	t.Run("fraud critical goes to head gm", func(t *testing.T) {
		res, err := svc.RouteBank(ctx, domain.BankRouteRequest{BankID: 7, Category: "Fraud_Alert", Severity: "Critical"})
		require.NoError(t, err)
		want := domain.RoutingResult{
			Bank:       "Sample Bank",
			Level:      domain.HeadGM,
			Contact:    domain.Contact{Name: domain.NotAvailable, Phone: domain.NotAvailable, Email: domain.NotAvailable},
			Confidence: 95.0,
		}
		if diff := cmp.Diff(want, res); diff != "" {
			t.Errorf("RouteBank mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("technical low goes to tech level 1", func(t *testing.T) {
		res, err := svc.RouteBank(ctx, domain.BankRouteRequest{BankID: 7, Category: "Technical_Error", Severity: "Low"})
		require.NoError(t, err)
		assert.Equal(t, domain.TechLevel1, res.Level)
		assert.Equal(t, "Ravi", res.Contact.Name)
		assert.Equal(t, domain.NotAvailable, res.Contact.Phone)
		assert.Equal(t, 65.0, res.Confidence)
	})

	t.Run("account access medium goes to level 1", func(t *testing.T) {
		res, err := svc.RouteBank(ctx, domain.BankRouteRequest{BankID: 7, Category: "Account_Access", Severity: "Medium"})
		require.NoError(t, err)
		assert.Equal(t, domain.Contact{Name: "Asha", Phone: "9999999999", Email: "a@x.com"}, res.Contact)
		assert.Equal(t, 75.0, res.Confidence)
	})

	t.Run("unknown bank is not found", func(t *testing.T) {
		_, err := svc.RouteBank(ctx, domain.BankRouteRequest{BankID: 99, Category: "Fraud_Alert", Severity: "Low"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown severity is rejected", func(t *testing.T) {
		_, err := svc.RouteBank(ctx, domain.BankRouteRequest{BankID: 7, Category: "Fraud_Alert", Severity: "Urgent"})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("unloaded store is unavailable", func(t *testing.T) {
		_, err := New(memStore{}).RouteBank(ctx, domain.BankRouteRequest{BankID: 7, Category: "Fraud_Alert", Severity: "Low"})
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestRouteSEBI(t *testing.T) {
	svc := New(sampleStore())
	ctx := context.Background()

	res, err := svc.RouteSEBI(ctx, domain.SEBIRouteRequest{SEBIID: 1, Category: "Compliance_Issues", Severity: "High"})
	require.NoError(t, err)
	want := domain.SEBIRoutingResult{
		EntityName:     "Alpha Advisors",
		RegistrationNo: "INP01",
		RouteType:      domain.ComplianceContact,
		ContactName:    "R. Iyer",
		ContactEmail:   "ops@alpha.example",
		ContactPhone:   "022111",
		Confidence:     90.0,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("RouteSEBI mismatch (-want +got):\n%s", diff)
	}

	res, err = svc.RouteSEBI(ctx, domain.SEBIRouteRequest{SEBIID: 2, Category: "Regulatory_Matters", Severity: "Low"})
	require.NoError(t, err)
	assert.Equal(t, domain.GeneralContact, res.RouteType)
	assert.Equal(t, domain.GeneralContactLabel, res.ContactName)
	assert.Equal(t, "desk@beta.example", res.ContactEmail)
	assert.Equal(t, domain.NotAvailable, res.ContactPhone)
	assert.Equal(t, 80.0, res.Confidence)

	_, err = svc.RouteSEBI(ctx, domain.SEBIRouteRequest{SEBIID: 3, Category: "Client_Grievances", Severity: "Low"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.RouteSEBI(ctx, domain.SEBIRouteRequest{SEBIID: 1, Category: "Fraud_Alert", Severity: "Low"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestRouteSEBIUsesSecondaryWithoutSecondaryAddress(t *testing.T) {
	row := make([]string, len(domain.SEBIColumns))
	set := func(col, v string) { row[slices.Index(domain.SEBIColumns, col)] = v }
	set("Name", "Gamma PMS")
	set("Registration_No", "INP03")
	set("Email_2", "desk@gamma.example")
	set("Telephone_2", "022555")

	e := domain.SEBIRecordFromRow(domain.SchemaStrict, 1, row)
	require.Nil(t, e.Secondary)
	svc := New(memStore{sebi: domain.NewSEBIDataset(domain.SchemaStrict, []domain.SEBIEntity{e})})

	res, err := svc.RouteSEBI(context.Background(), domain.SEBIRouteRequest{SEBIID: 1, Category: "Client_Grievances", Severity: "Medium"})
	require.NoError(t, err)
	assert.Equal(t, domain.CustomerSupport, res.RouteType)
	assert.Equal(t, "desk@gamma.example", res.ContactEmail)
	assert.Equal(t, "022555", res.ContactPhone)
	assert.Equal(t, 80.0, res.Confidence)
}
