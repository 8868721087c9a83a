package domain

import "strings"

// BankDataset is an immutable snapshot of the bank contact table and its
// feature table. Build with NewBankDataset; never mutate after publishing.
type BankDataset struct {
	Entities      []BankEntity
	Organizations []Organization
	// ModelArtifacts reports whether the classifier artifacts were present
	// alongside the tables. They are never consulted for routing.
	ModelArtifacts bool

	byID map[EntityID]int
}

func NewBankDataset(entities []BankEntity, orgs []Organization, modelArtifacts bool) *BankDataset {
	d := &BankDataset{
		Entities:       entities,
		Organizations:  orgs,
		ModelArtifacts: modelArtifacts,
		byID:           make(map[EntityID]int, len(entities)),
	}
	for i, e := range entities {
		if _, dup := d.byID[e.ID]; !dup {
			d.byID[e.ID] = i
		}
	}
	return d
}

// ByID returns the first row carrying id.
func (d *BankDataset) ByID(id EntityID) (BankEntity, error) {
	i, ok := d.byID[id]
	if !ok {
		return BankEntity{}, NotFoundf("No contact data found for bank ID %d", id)
	}
	return d.Entities[i], nil
}

// SEBISchema records which column layout the SEBI sheet was read with.
type SEBISchema int

const (
	// SchemaStrict names all of SEBIColumns.
	SchemaStrict SEBISchema = iota
	// SchemaLegacy names only the first six columns; the rest are positional.
	SchemaLegacy
)

func (s SEBISchema) String() string {
	if s == SchemaLegacy {
		return "legacy"
	}
	return "strict"
}

// NamesRegions reports whether state/city columns are addressable by name.
// Region filters and the state list only operate on named columns.
func (s SEBISchema) NamesRegions() bool { return s == SchemaStrict }

// SEBIColumns is the fixed positional schema of the SEBI sheet.
var SEBIColumns = []string{
	"Name", "Registration_No", "Contact_Person",
	"Address_1", "Email_1", "Telephone_1", "Fax_1", "City_1", "State_1", "Pincode_1",
	"Address_2", "Email_2", "Telephone_2", "Fax_2", "City_2", "State_2", "Pincode_2",
	"From_Date", "To_Date", "Country",
}

// Column positions within SEBIColumns.
const (
	colName = iota
	colRegistrationNo
	colContactPerson
	colAddress1
	colEmail1
	colTelephone1
	colFax1
	colCity1
	colState1
	colPincode1
	colAddress2
	colEmail2
	colTelephone2
	colFax2
	colCity2
	colState2
	colPincode2
	colFromDate
	colToDate
	colCountry
)

// LegacyNamedColumns is how many leading columns the legacy schema maps by name.
const LegacyNamedColumns = 6

// SEBIRecordFromRow projects one positional sheet row onto an entity.
// Cells beyond the row are blank. Under the legacy schema the secondary
// block is never populated because Address_2 has no name.
func SEBIRecordFromRow(schema SEBISchema, id EntityID, row []string) SEBIEntity {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	e := SEBIEntity{
		ID:             id,
		Name:           cell(colName),
		RegistrationNo: cell(colRegistrationNo),
		ContactPerson:  cell(colContactPerson),
		Primary: ContactBlock{
			Address:   cell(colAddress1),
			Email:     cell(colEmail1),
			Telephone: cell(colTelephone1),
			Fax:       cell(colFax1),
			City:      cell(colCity1),
			State:     cell(colState1),
			Pincode:   cell(colPincode1),
		},
		FromDate: cell(colFromDate),
		ToDate:   cell(colToDate),
	}
	if schema == SchemaLegacy {
		return e
	}
	e.Country = cell(colCountry)
	e.SecondaryEmail = cell(colEmail2)
	e.SecondaryTelephone = cell(colTelephone2)
	if addr := cell(colAddress2); addr != "" {
		e.Secondary = &ContactBlock{
			Address:   addr,
			Email:     cell(colEmail2),
			Telephone: cell(colTelephone2),
			Fax:       cell(colFax2),
			City:      cell(colCity2),
			State:     cell(colState2),
			Pincode:   cell(colPincode2),
		}
	}
	return e
}

// sheetBanner appears in title rows that leak into the data range.
const sheetBanner = "Registered Portfolio Managers"

// IsSEBIDataRow reports whether a row with this name is a real entity.
func IsSEBIDataRow(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && !strings.Contains(name, sheetBanner)
}

type SEBIDataset struct {
	Schema   SEBISchema
	Entities []SEBIEntity

	byID map[EntityID]int
}

func NewSEBIDataset(schema SEBISchema, entities []SEBIEntity) *SEBIDataset {
	d := &SEBIDataset{Schema: schema, Entities: entities, byID: make(map[EntityID]int, len(entities))}
	for i, e := range entities {
		if _, dup := d.byID[e.ID]; !dup {
			d.byID[e.ID] = i
		}
	}
	return d
}

func (d *SEBIDataset) ByID(id EntityID) (SEBIEntity, error) {
	i, ok := d.byID[id]
	if !ok {
		return SEBIEntity{}, NotFoundf("No SEBI entity found with ID %d", id)
	}
	return d.Entities[i], nil
}
