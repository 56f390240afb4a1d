package model

// SectionStatus is the per-section verdict derived from a 1-10 score.
type SectionStatus string

const (
	StatusMeetingStandard   SectionStatus = "meeting-standard"
	StatusImprovementNeeded SectionStatus = "improvement-needed"
	StatusInadequate        SectionStatus = "inadequate"
)

// Verdict is the overall inspection verdict. Same score boundaries as
// SectionStatus, different label vocabulary.
type Verdict string

const (
	VerdictGood                Verdict = "good"
	VerdictRequiresImprovement Verdict = "requires-improvement"
	VerdictInadequate          Verdict = "inadequate"
)

// Sentiment tags a resident quote.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentConcern  Sentiment = "concern"
	SentimentNeutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three known sentiments.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentConcern, SentimentNeutral:
		return true
	}
	return false
}

// Question is an open-ended inspection question, optionally with probing
// sub-prompts.
type Question struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	Probes []string `json:"probes,omitempty"`
}

// Section is a themed group of open-ended questions sharing one score.
type Section struct {
	ID        string     `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Purpose   string     `json:"purpose"`
	Questions []Question `json:"questions"`
}

// Quote is an attributed verbatim statement from an interviewee.
type Quote struct {
	Text       string    `json:"text"`
	ResidentID string    `json:"residentId"`
	Sentiment  Sentiment `json:"sentiment"`
}

// QuestionResponse holds the inspector's free-text finding for one question.
type QuestionResponse struct {
	QuestionID string `json:"questionId"`
	Finding    string `json:"finding"`
}

// SectionResponse is the inspector's recorded state for one section. Status
// is always derived from Score and never set independently.
type SectionResponse struct {
	SectionID    string             `json:"sectionId"`
	Score        int                `json:"score"`
	Status       SectionStatus      `json:"status"`
	Responses    []QuestionResponse `json:"responses"`
	Quotes       []Quote            `json:"quotes"`
	WhyThisScore string             `json:"whyThisScore"`
}

// Complete reports whether the section counts toward progress.
func (r *SectionResponse) Complete() bool {
	return r.WhyThisScore != ""
}

// ActionPriority ranks a follow-up action.
type ActionPriority string

const (
	PriorityHigh   ActionPriority = "high"
	PriorityMedium ActionPriority = "medium"
	PriorityLow    ActionPriority = "low"
)

// Action is a follow-up item the inspector attaches to the report.
type Action struct {
	ID          string         `json:"id"`
	Priority    ActionPriority `json:"priority"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Deadline    string         `json:"deadline"`
}
