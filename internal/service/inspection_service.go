package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"careinspect/internal/bank"
	"careinspect/internal/model"
	"careinspect/internal/store"
)

// SectionResponseUpdate is a partial update to one section's recorded state.
// Nil fields are left untouched; non-nil slices replace or merge as noted.
type SectionResponseUpdate struct {
	Score        *int                     `json:"score"`
	Responses    []model.QuestionResponse `json:"responses"`
	Quotes       []model.Quote            `json:"quotes"`
	WhyThisScore *string                  `json:"whyThisScore"`
}

// InspectionService drives the open-ended inspection flow: setup, the
// 15-section questionnaire, and the step navigation between them.
type InspectionService struct {
	store    *store.InspectionStore
	bank     *bank.Bank
	validate *validator.Validate
}

// NewInspectionService creates an inspection service over the given store and
// question bank.
func NewInspectionService(st *store.InspectionStore, b *bank.Bank) *InspectionService {
	return &InspectionService{store: st, bank: b, validate: newValidator()}
}

// Create opens a fresh inspection session on the setup step.
func (s *InspectionService) Create(ctx context.Context) (*model.InspectionSession, error) {
	sess := &model.InspectionSession{
		ID:        uuid.NewString(),
		Step:      model.StepSetup,
		Responses: make(map[string]*model.SectionResponse),
		CreatedAt: time.Now().UTC(),
	}
	s.store.Put(sess)
	return sess, nil
}

// Get returns a copy of the session.
func (s *InspectionService) Get(ctx context.Context, id string) (*model.InspectionSession, error) {
	return s.store.Get(id)
}

// UpdateSetup replaces the property prelude. Validity is only enforced when
// the inspector tries to start the questionnaire, so partial edits stick.
func (s *InspectionService) UpdateSetup(ctx context.Context, id string, setup model.InspectionSetup) (*model.InspectionSession, error) {
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		sess.Setup = setup
		return nil
	})
}

// Start moves the session from setup into the questionnaire. The setup must
// be complete: both names non-blank and both resident counts positive.
func (s *InspectionService) Start(ctx context.Context, id string) (*model.InspectionSession, error) {
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		if err := s.checkSetup(sess.Setup); err != nil {
			return err
		}
		sess.Step = model.StepQuestioning
		sess.CurrentSectionIndex = 0
		return nil
	})
}

func (s *InspectionService) checkSetup(setup model.InspectionSetup) error {
	if err := s.validate.Struct(setup); err != nil {
		return fmt.Errorf("%w: setup incomplete", ErrNotReady)
	}
	return nil
}

// SaveSection applies a partial update to one section, materializing its
// response on first touch with the default score of 5. Scores outside 1-10
// are rejected; status is rederived on every score write.
func (s *InspectionService) SaveSection(ctx context.Context, id, sectionID string, upd SectionResponseUpdate) (*model.InspectionSession, error) {
	def, ok := s.bank.InspectionSection(sectionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		r := materializeSection(sess, def)
		if upd.Score != nil {
			if *upd.Score < 1 || *upd.Score > 10 {
				return fmt.Errorf("%w: score must be 1-10", ErrInvalid)
			}
			r.Score = *upd.Score
			r.Status = model.StatusFromScore(r.Score)
		}
		if upd.Responses != nil {
			for _, in := range upd.Responses {
				if err := setFinding(r, def, in); err != nil {
					return err
				}
			}
		}
		if upd.Quotes != nil {
			quotes := make([]model.Quote, 0, len(upd.Quotes))
			for _, q := range upd.Quotes {
				cq, err := checkQuote(q)
				if err != nil {
					return err
				}
				quotes = append(quotes, cq)
			}
			r.Quotes = quotes
		}
		if upd.WhyThisScore != nil {
			r.WhyThisScore = *upd.WhyThisScore
		}
		return nil
	})
}

// AddQuote appends an attributed quote to a section.
func (s *InspectionService) AddQuote(ctx context.Context, id, sectionID string, q model.Quote) (*model.InspectionSession, error) {
	def, ok := s.bank.InspectionSection(sectionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	cq, err := checkQuote(q)
	if err != nil {
		return nil, err
	}
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		r := materializeSection(sess, def)
		r.Quotes = append(r.Quotes, cq)
		return nil
	})
}

// RemoveQuote deletes the quote at index from a section.
func (s *InspectionService) RemoveQuote(ctx context.Context, id, sectionID string, index int) (*model.InspectionSession, error) {
	def, ok := s.bank.InspectionSection(sectionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		r := materializeSection(sess, def)
		if index < 0 || index >= len(r.Quotes) {
			return fmt.Errorf("%w: quote index out of range", ErrInvalid)
		}
		r.Quotes = append(r.Quotes[:index], r.Quotes[index+1:]...)
		return nil
	})
}

// AddAction records a follow-up action. The id is assigned server-side;
// priority defaults to medium when omitted.
func (s *InspectionService) AddAction(ctx context.Context, id string, a model.Action) (*model.InspectionSession, error) {
	if strings.TrimSpace(a.Title) == "" {
		return nil, fmt.Errorf("%w: action title required", ErrInvalid)
	}
	if a.Priority == "" {
		a.Priority = model.PriorityMedium
	}
	switch a.Priority {
	case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
	default:
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalid, a.Priority)
	}
	a.ID = uuid.NewString()
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		sess.Actions = append(sess.Actions, a)
		return nil
	})
}

// RemoveAction deletes an action by id. Unknown ids are ignored.
func (s *InspectionService) RemoveAction(ctx context.Context, id, actionID string) (*model.InspectionSession, error) {
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		kept := sess.Actions[:0]
		for _, a := range sess.Actions {
			if a.ID != actionID {
				kept = append(kept, a)
			}
		}
		sess.Actions = kept
		return nil
	})
}

// Next advances to the following section, or to the report past the last one.
func (s *InspectionService) Next(ctx context.Context, id string) (*model.InspectionSession, error) {
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		if sess.Step != model.StepQuestioning {
			return fmt.Errorf("%w: not in the questionnaire", ErrNotReady)
		}
		if sess.CurrentSectionIndex < len(s.bank.InspectionSections())-1 {
			sess.CurrentSectionIndex++
		} else {
			sess.Step = model.StepReport
		}
		return nil
	})
}

// Previous steps back one section, or from the report back into the last
// section. At the first section it is a no-op.
func (s *InspectionService) Previous(ctx context.Context, id string) (*model.InspectionSession, error) {
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		switch sess.Step {
		case model.StepReport:
			sess.Step = model.StepQuestioning
			sess.CurrentSectionIndex = len(s.bank.InspectionSections()) - 1
		case model.StepQuestioning:
			if sess.CurrentSectionIndex > 0 {
				sess.CurrentSectionIndex--
			}
		default:
			return fmt.Errorf("%w: not in the questionnaire", ErrNotReady)
		}
		return nil
	})
}

// Goto jumps straight to a section by index. Jumps are ungated once the
// questionnaire has begun, but cannot bypass the setup gate.
func (s *InspectionService) Goto(ctx context.Context, id string, index int) (*model.InspectionSession, error) {
	if index < 0 || index >= len(s.bank.InspectionSections()) {
		return nil, fmt.Errorf("%w: section index out of range", ErrInvalid)
	}
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		if sess.Step == model.StepSetup {
			return fmt.Errorf("%w: questionnaire not started", ErrNotReady)
		}
		sess.Step = model.StepQuestioning
		sess.CurrentSectionIndex = index
		return nil
	})
}

// Progress returns the exact completion percentage: sections with a
// justification written, over the fixed section count.
func (s *InspectionService) Progress(ctx context.Context, id string) (float64, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return 0, err
	}
	done := 0
	for _, r := range sess.Responses {
		if r.Complete() {
			done++
		}
	}
	return float64(done) / float64(len(s.bank.InspectionSections())) * 100, nil
}

// Reset wipes the session back to a blank setup step, keeping its id.
func (s *InspectionService) Reset(ctx context.Context, id string) (*model.InspectionSession, error) {
	return s.store.Update(id, func(sess *model.InspectionSession) error {
		sess.Setup = model.InspectionSetup{}
		sess.Step = model.StepSetup
		sess.CurrentSectionIndex = 0
		sess.Responses = make(map[string]*model.SectionResponse)
		sess.Actions = nil
		return nil
	})
}

// materializeSection returns the session's response for a section, creating
// it with defaults on first touch: score 5, one empty finding per question.
func materializeSection(sess *model.InspectionSession, def model.Section) *model.SectionResponse {
	if r, ok := sess.Responses[def.ID]; ok {
		return r
	}
	r := &model.SectionResponse{
		SectionID: def.ID,
		Score:     5,
		Status:    model.StatusFromScore(5),
		Responses: make([]model.QuestionResponse, 0, len(def.Questions)),
	}
	for _, q := range def.Questions {
		r.Responses = append(r.Responses, model.QuestionResponse{QuestionID: q.ID})
	}
	sess.Responses[def.ID] = r
	return r
}

// setFinding writes one finding onto its question slot. Findings are merged
// by question id so a partial payload never drops sibling findings.
func setFinding(r *model.SectionResponse, def model.Section, in model.QuestionResponse) error {
	for i := range r.Responses {
		if r.Responses[i].QuestionID == in.QuestionID {
			r.Responses[i].Finding = in.Finding
			return nil
		}
	}
	for _, q := range def.Questions {
		if q.ID == in.QuestionID {
			r.Responses = append(r.Responses, model.QuestionResponse{QuestionID: q.ID, Finding: in.Finding})
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownQuestion, in.QuestionID)
}

// checkQuote validates a quote and fills the default sentiment.
func checkQuote(q model.Quote) (model.Quote, error) {
	if strings.TrimSpace(q.Text) == "" || strings.TrimSpace(q.ResidentID) == "" {
		return model.Quote{}, fmt.Errorf("%w: quote text and residentId required", ErrInvalid)
	}
	if q.Sentiment == "" {
		q.Sentiment = model.SentimentNeutral
	}
	if !q.Sentiment.Valid() {
		return model.Quote{}, fmt.Errorf("%w: unknown sentiment %q", ErrInvalid, q.Sentiment)
	}
	return q, nil
}
