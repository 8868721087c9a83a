package domain

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; keep these decoupled where helpful.

// NotAvailable replaces any blank contact field in a routing result.
const NotAvailable = "Not Available"

// GeneralContactLabel names the contact when an intermediary has no contact person.
const GeneralContactLabel = "General Contact"

type EntityID int

// Contact is the (name, phone, email) triple held for one escalation slot.
// Fields are raw dataset values; blanks are substituted only when rendered.
type Contact struct {
	Name  string
	Phone string
	Email string
}

type BankEntity struct {
	ID       EntityID
	Name     string
	Contacts map[EscalationLevel]Contact
}

// Contact returns the slot for level, or the zero Contact when the row has none.
func (b BankEntity) Contact(level EscalationLevel) Contact {
	return b.Contacts[level]
}

// Organization is one row of the bank feature table backing the bank picker.
type Organization struct {
	ID   EntityID
	Name string
}

type ContactBlock struct {
	Address   string
	Email     string
	Telephone string
	Fax       string
	City      string
	State     string
	Pincode   string
}

type SEBIEntity struct {
	ID             EntityID
	Name           string
	RegistrationNo string
	ContactPerson  string
	Primary        ContactBlock
	Secondary      *ContactBlock // nil when the secondary address is blank
	FromDate       string
	ToDate         string
	Country        string

	// SecondaryEmail and SecondaryTelephone hold Email_2 and Telephone_2
	// even when Secondary is nil; routing falls back to them.
	SecondaryEmail     string
	SecondaryTelephone string
}

// BankRouteRequest carries raw enum strings; the routing service parses them.
type BankRouteRequest struct {
	BankID   EntityID
	Category string
	Severity string
}

type SEBIRouteRequest struct {
	SEBIID   EntityID
	Category string
	Severity string
}

// RoutingResult is a response-only value; it is never stored.
type RoutingResult struct {
	Bank       string
	Level      EscalationLevel
	Contact    Contact
	Confidence float64
}

type SEBIRoutingResult struct {
	EntityName     string
	RegistrationNo string
	RouteType      RouteType
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	Confidence     float64
}

// ContactEntry is one named official in a role listing.
type ContactEntry struct {
	BankID      EntityID
	BankName    string
	Name        string
	Role        ContactRole
	Email       string
	Phone       string
	EmailDomain string
	EmailType   EmailType
}

// EmailType classifies a contact address by its domain.
type EmailType string

const (
	EmailMissing       EmailType = "missing"
	EmailGeneric       EmailType = "generic"
	EmailPersonalGmail EmailType = "personal_gmail"
	EmailPersonalOther EmailType = "personal_other"
	EmailCorporate     EmailType = "corporate"
)
