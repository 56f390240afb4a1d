package model

// ReportFinding joins one recorded finding with its question text for
// display. Finding may be empty when the inspector left the box blank.
type ReportFinding struct {
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
	Finding      string `json:"finding"`
}

// ReportSection is one section of the assembled inspection report.
type ReportSection struct {
	SectionID    string          `json:"sectionId"`
	Number       int             `json:"number"`
	Title        string          `json:"title"`
	Score        int             `json:"score"`
	Status       SectionStatus   `json:"status"`
	Findings     []ReportFinding `json:"findings"`
	Quotes       []Quote         `json:"quotes"`
	WhyThisScore string          `json:"whyThisScore"`
}

// InspectionReport is the denormalized snapshot assembled when an inspection
// reaches the report step. It is never mutated after creation.
type InspectionReport struct {
	ID                   string          `json:"id"`
	PropertyName         string          `json:"propertyName"`
	ProviderName         string          `json:"providerName"`
	Date                 string          `json:"date"`
	ResidentsInterviewed int             `json:"residentsInterviewed"`
	TotalResidents       int             `json:"totalResidents"`
	Sections             []ReportSection `json:"sections"`
	OverallScore         float64         `json:"overallScore"`
	OverallVerdict       Verdict         `json:"overallVerdict"`
	MeetingStandard      int             `json:"meetingStandard"`
	ImprovementNeeded    int             `json:"improvementNeeded"`
	Inadequate           int             `json:"inadequate"`
	AssessmentSummary    string          `json:"assessmentSummary"`
	Actions              []Action        `json:"actions"`
}

// AuditReportAnswer joins one yes/no answer with its question for display.
type AuditReportAnswer struct {
	QuestionID string `json:"questionId"`
	Number     int    `json:"number"`
	Text       string `json:"text"`
	Answer     Answer `json:"answer"`
}

// AuditReportSection is one section of the assembled compliance report.
type AuditReportSection struct {
	SectionID        string              `json:"sectionId"`
	Title            string              `json:"title"`
	CountryPrefix    string              `json:"countryPrefix"`
	Score            int                 `json:"score"`
	MaxScore         int                 `json:"maxScore"`
	Percent          int                 `json:"percent"`
	Verdict          AuditVerdict        `json:"verdict"`
	Answers          []AuditReportAnswer `json:"answers"`
	Narrative        string              `json:"narrative"`
	IsSaved          bool                `json:"isSaved"`
	IsNarrativeSaved bool                `json:"isNarrativeSaved"`
}

// AuditReport is the denormalized compliance-audit snapshot.
type AuditReport struct {
	AuditNumber      string               `json:"auditNumber"`
	ServiceName      string               `json:"serviceName"`
	ServiceType      ServiceType          `json:"serviceType"`
	ServiceTypeLabel string               `json:"serviceTypeLabel"`
	Country          Country              `json:"country"`
	CountryLabel     string               `json:"countryLabel"`
	KeyContact       Contact              `json:"keyContact"`
	VisitDetails     VisitDetails         `json:"visitDetails"`
	Sections         []AuditReportSection `json:"sections"`
	TotalScore       int                  `json:"totalScore"`
	TotalMaxScore    int                  `json:"totalMaxScore"`
	Percentage       int                  `json:"percentage"`
	Verdict          AuditVerdict         `json:"verdict"`
	GeneratedAt      string               `json:"generatedAt"`
}
