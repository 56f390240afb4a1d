package model

import "fmt"

// Country scopes the compliance audit question set.
type Country string

const (
	CountryEngland         Country = "england"
	CountryWales           Country = "wales"
	CountryScotland        Country = "scotland"
	CountryNorthernIreland Country = "northern-ireland"
)

// Prefix returns the audit-number prefix for the country.
func (c Country) Prefix() string {
	switch c {
	case CountryEngland:
		return "E"
	case CountryWales:
		return "W"
	case CountryScotland:
		return "S"
	case CountryNorthernIreland:
		return "NI"
	}
	return ""
}

// Label returns the display name for the country.
func (c Country) Label() string {
	switch c {
	case CountryEngland:
		return "England"
	case CountryWales:
		return "Wales"
	case CountryScotland:
		return "Scotland"
	case CountryNorthernIreland:
		return "Northern Ireland"
	}
	return ""
}

// Valid reports whether c is a known country.
func (c Country) Valid() bool {
	return c.Prefix() != ""
}

// ServiceType identifies the kind of service being audited.
type ServiceType string

const (
	ServicePrep4Life          ServiceType = "prep4life"
	ServiceTrainingCraftAudit ServiceType = "training-craft-audit"
	ServiceSupportedLiving    ServiceType = "supported-living"
	ServiceDayService         ServiceType = "day-service"
)

// Label returns the display name for the service type.
func (s ServiceType) Label() string {
	switch s {
	case ServicePrep4Life:
		return "Prep4life"
	case ServiceTrainingCraftAudit:
		return "Training Craft Audit – Care training provider's audit"
	case ServiceSupportedLiving:
		return "Supported Living Service"
	case ServiceDayService:
		return "Day Service"
	}
	return ""
}

// Valid reports whether s is a known service type.
func (s ServiceType) Valid() bool {
	return s.Label() != ""
}

// RequiresVisitDetails reports whether the audit flow includes the
// visit-details step for this service type.
func (s ServiceType) RequiresVisitDetails() bool {
	return s == ServiceSupportedLiving || s == ServiceDayService
}

// Answer is a three-state yes/no response. The zero value is Unanswered so a
// freshly seeded answer sheet reads as not-yet-answered.
type Answer int

const (
	Unanswered Answer = iota
	Yes
	No
)

// Answered reports whether the question has been given a yes or no.
func (a Answer) Answered() bool {
	return a == Yes || a == No
}

// MarshalJSON keeps the original wire shape: true, false, or null.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a {
	case Yes:
		return []byte("true"), nil
	case No:
		return []byte("false"), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts true, false, or null.
func (a *Answer) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*a = Yes
	case "false":
		*a = No
	case "null":
		*a = Unanswered
	default:
		return fmt.Errorf("invalid answer %q", data)
	}
	return nil
}

// Contact is a named point of contact for the audited service.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AuditSetup identifies the service under audit. KeyContact2 is optional.
type AuditSetup struct {
	AuditNumber string      `json:"auditNumber"`
	ServiceType ServiceType `json:"serviceType" validate:"required"`
	Country     Country     `json:"country" validate:"required"`
	ServiceName string      `json:"serviceName" validate:"notblank"`
	KeyContact1 Contact     `json:"keyContact1"`
	KeyContact2 Contact     `json:"keyContact2"`
}

// VisitDetails records the on-site visit prelude for supported-living and
// day-service audits.
type VisitDetails struct {
	DateOfVisit      string   `json:"dateOfVisit" validate:"notblank"`
	TimeOfVisit      string   `json:"timeOfVisit" validate:"notblank"`
	GreeterName      string   `json:"greeterName" validate:"notblank"`
	IDChecked        Answer   `json:"idChecked"`
	ClientsInService int      `json:"clientsInService" validate:"gt=0"`
	StaffOnShift     int      `json:"staffOnShift" validate:"gt=0"`
	HasOtherVisitors Answer   `json:"hasOtherVisitors"`
	VisitorNames     []string `json:"visitorNames" validate:"max=3"`
	ClientFocus1     string   `json:"clientFocus1" validate:"notblank"`
	ClientFocus2     string   `json:"clientFocus2"`
}

// AuditQuestion is a single yes/no compliance question worth exactly one
// point. Number is the display ordinal across the whole audit.
type AuditQuestion struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// AuditSection is a scored group of yes/no questions with a required
// narrative constrained to a word-count band.
type AuditSection struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	CountryPrefix string          `json:"countryPrefix"`
	MaxScore      int             `json:"maxScore"`
	WordCountMin  int             `json:"wordCountMin"`
	WordCountMax  int             `json:"wordCountMax"`
	Questions     []AuditQuestion `json:"questions"`
}

// QuestionAnswer pairs a question with its tri-state answer.
type QuestionAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     Answer `json:"answer"`
}

// SectionData is the mutable audit state for one section. Score is kept in
// sync with Answers on every write; the save flags are progress bookkeeping
// and reset whenever their underlying data changes.
type SectionData struct {
	SectionID        string           `json:"sectionId"`
	Answers          []QuestionAnswer `json:"answers"`
	Score            int              `json:"score"`
	Narrative        string           `json:"narrative"`
	IsSaved          bool             `json:"isSaved"`
	IsNarrativeSaved bool             `json:"isNarrativeSaved"`
}

// AllAnswered reports whether every question has a yes or no.
func (d *SectionData) AllAnswered() bool {
	for _, a := range d.Answers {
		if !a.Answer.Answered() {
			return false
		}
	}
	return true
}

// AnsweredCount returns how many questions have a yes or no.
func (d *SectionData) AnsweredCount() int {
	n := 0
	for _, a := range d.Answers {
		if a.Answer.Answered() {
			n++
		}
	}
	return n
}
