package domain

import (
	"fmt"
	"strings"
)

type IssueCategory string

const (
	AccountAccess      IssueCategory = "Account_Access"
	TransactionFailure IssueCategory = "Transaction_Failure"
	TechnicalError     IssueCategory = "Technical_Error"
	FraudAlert         IssueCategory = "Fraud_Alert"
	CustomerService    IssueCategory = "Customer_Service"
	DataSync           IssueCategory = "Data_Sync"
)

var IssueCategories = []IssueCategory{
	AccountAccess, TransactionFailure, TechnicalError, FraudAlert, CustomerService, DataSync,
}

type Severity string

const (
	Low      Severity = "Low"
	Medium   Severity = "Medium"
	High     Severity = "High"
	Critical Severity = "Critical"
)

var Severities = []Severity{Low, Medium, High, Critical}

type SEBICategory string

const (
	InvestmentAdvisory  SEBICategory = "Investment_Advisory"
	PortfolioManagement SEBICategory = "Portfolio_Management"
	ResearchAnalysis    SEBICategory = "Research_Analysis"
	ComplianceIssues    SEBICategory = "Compliance_Issues"
	ClientGrievances    SEBICategory = "Client_Grievances"
	RegulatoryMatters   SEBICategory = "Regulatory_Matters"
)

var SEBICategories = []SEBICategory{
	InvestmentAdvisory, PortfolioManagement, ResearchAnalysis, ComplianceIssues, ClientGrievances, RegulatoryMatters,
}

// EscalationLevel is the responsibility tier a bank issue is routed to.
type EscalationLevel string

const (
	Level1     EscalationLevel = "Level_1"
	Level2     EscalationLevel = "Level_2"
	Level3     EscalationLevel = "Level_3"
	TechLevel1 EscalationLevel = "Tech_Level_1"
	TechLevel2 EscalationLevel = "Tech_Level_2"
	HeadGM     EscalationLevel = "Head_GM"
)

var EscalationLevels = []EscalationLevel{Level1, Level2, Level3, TechLevel1, TechLevel2, HeadGM}

// RouteType is the SEBI analogue of an escalation level.
type RouteType string

const (
	ComplianceContact RouteType = "Compliance Contact"
	GeneralContact    RouteType = "General Contact"
	CustomerSupport   RouteType = "Customer Service"
)

// ContactRole names one contact slot of a bank row in role listings.
type ContactRole struct {
	Key     string
	Display string
	Level   EscalationLevel
}

// ContactRoles is ordered the way "all" listings flatten them.
var ContactRoles = []ContactRole{
	{Key: "gm_head", Display: "GM/Head", Level: HeadGM},
	{Key: "level1", Display: "Level 1 Official", Level: Level1},
	{Key: "level2", Display: "Level 2 Official", Level: Level2},
	{Key: "level3", Display: "Level 3 Official", Level: Level3},
	{Key: "tech_level1", Display: "Technical Level 1", Level: TechLevel1},
	{Key: "tech_level2", Display: "Technical Level 2", Level: TechLevel2},
}

// AllRoles selects every role in ListContacts.
const AllRoles = "all"

// RoleByKey finds a role by its listing key.
func RoleByKey(key string) (ContactRole, bool) {
	for _, r := range ContactRoles {
		if r.Key == key {
			return r, true
		}
	}
	return ContactRole{}, false
}

func ParseIssueCategory(s string) (IssueCategory, error) {
	return parseEnum("issue_category", s, IssueCategories)
}

func ParseSeverity(s string) (Severity, error) {
	return parseEnum("severity", s, Severities)
}

func ParseSEBICategory(s string) (SEBICategory, error) {
	return parseEnum("issue_category", s, SEBICategories)
}

func parseEnum[T ~string](field, raw string, valid []T) (T, error) {
	v := T(strings.TrimSpace(raw))
	for _, candidate := range valid {
		if v == candidate {
			return v, nil
		}
	}
	var zero T
	if v == "" {
		return zero, Invalidf("%s is required", field)
	}
	return zero, Invalidf("unknown %s %q", field, raw)
}

// DisplayName renders an enum identifier for pickers, e.g. "Fraud Alert".
func DisplayName[T ~string](v T) string {
	return strings.ReplaceAll(string(v), "_", " ")
}

func (l EscalationLevel) String() string { return string(l) }

func (r RouteType) String() string { return string(r) }

func (c ContactRole) String() string { return fmt.Sprintf("%s (%s)", c.Display, c.Key) }
