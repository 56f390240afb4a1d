package model

import "time"

// Step is the screen the session is currently on.
type Step string

const (
	StepSetup        Step = "setup"
	StepVisitDetails Step = "visit-details"
	StepQuestioning  Step = "questioning"
	StepAudit        Step = "audit"
	StepReport       Step = "report"
)

// InspectionSetup is the property prelude gating entry to the questionnaire.
type InspectionSetup struct {
	PropertyName         string `json:"propertyName" validate:"notblank"`
	ProviderName         string `json:"providerName" validate:"notblank"`
	ResidentsInterviewed int    `json:"residentsInterviewed" validate:"gt=0"`
	TotalResidents       int    `json:"totalResidents" validate:"gt=0"`
}

// InspectionSession is one in-progress open-ended inspection. All state is
// in-memory for the lifetime of the session; nothing is persisted.
type InspectionSession struct {
	ID                  string                      `json:"id"`
	Setup               InspectionSetup             `json:"setup"`
	Step                Step                        `json:"step"`
	CurrentSectionIndex int                         `json:"currentSectionIndex"`
	Responses           map[string]*SectionResponse `json:"responses"`
	Actions             []Action                    `json:"actions"`
	CreatedAt           time.Time                   `json:"createdAt"`
}

// Clone returns a deep copy so callers can read session state without
// holding the store lock.
func (s *InspectionSession) Clone() *InspectionSession {
	out := *s
	out.Responses = make(map[string]*SectionResponse, len(s.Responses))
	for id, r := range s.Responses {
		rc := *r
		rc.Responses = append([]QuestionResponse(nil), r.Responses...)
		rc.Quotes = append([]Quote(nil), r.Quotes...)
		out.Responses[id] = &rc
	}
	out.Actions = append([]Action(nil), s.Actions...)
	return &out
}

// AuditSession is one in-progress compliance audit.
type AuditSession struct {
	ID                  string                  `json:"id"`
	Setup               AuditSetup              `json:"setup"`
	VisitDetails        VisitDetails            `json:"visitDetails"`
	Step                Step                    `json:"step"`
	CurrentSectionIndex int                     `json:"currentSectionIndex"`
	Sections            map[string]*SectionData `json:"sections"`
	IsSetupSaved        bool                    `json:"isSetupSaved"`
	IsVisitDetailsSaved bool                    `json:"isVisitDetailsSaved"`
	CreatedAt           time.Time               `json:"createdAt"`
}

// Clone returns a deep copy of the audit session.
func (s *AuditSession) Clone() *AuditSession {
	out := *s
	out.VisitDetails.VisitorNames = append([]string(nil), s.VisitDetails.VisitorNames...)
	out.Sections = make(map[string]*SectionData, len(s.Sections))
	for id, d := range s.Sections {
		dc := *d
		dc.Answers = append([]QuestionAnswer(nil), d.Answers...)
		out.Sections[id] = &dc
	}
	return &out
}
