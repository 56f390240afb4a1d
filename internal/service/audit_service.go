package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"careinspect/internal/bank"
	"careinspect/internal/model"
	"careinspect/internal/sequence"
	"careinspect/internal/store"
)

// AuditSetupUpdate is a partial update to the audit setup. Selecting a
// country is destructive: it issues a fresh audit number and reinitializes
// every section's answers and narrative for that country's question set.
type AuditSetupUpdate struct {
	ServiceType *model.ServiceType `json:"serviceType"`
	Country     *model.Country     `json:"country"`
	ServiceName *string            `json:"serviceName"`
	KeyContact1 *model.Contact     `json:"keyContact1"`
	KeyContact2 *model.Contact     `json:"keyContact2"`
}

// VisitDetailsUpdate is a partial update to the visit-details step.
type VisitDetailsUpdate struct {
	DateOfVisit      *string       `json:"dateOfVisit"`
	TimeOfVisit      *string       `json:"timeOfVisit"`
	GreeterName      *string       `json:"greeterName"`
	IDChecked        *model.Answer `json:"idChecked"`
	ClientsInService *int          `json:"clientsInService"`
	StaffOnShift     *int          `json:"staffOnShift"`
	HasOtherVisitors *model.Answer `json:"hasOtherVisitors"`
	VisitorNames     []string      `json:"visitorNames"`
	ClientFocus1     *string       `json:"clientFocus1"`
	ClientFocus2     *string       `json:"clientFocus2"`
}

// AuditService drives the compliance-audit flow: setup, the optional
// visit-details prelude, the per-section yes/no sheets with narratives, and
// the navigation gates between them.
type AuditService struct {
	store    *store.AuditStore
	bank     *bank.Bank
	seq      sequence.Sequence
	validate *validator.Validate
}

// NewAuditService creates an audit service. The sequence issues audit
// reference numbers and may be the in-memory counter or the Redis one.
func NewAuditService(st *store.AuditStore, b *bank.Bank, seq sequence.Sequence) *AuditService {
	return &AuditService{store: st, bank: b, seq: seq, validate: newValidator()}
}

// Create opens a fresh audit session on the setup step. No audit number is
// issued until a country is chosen.
func (s *AuditService) Create(ctx context.Context) (*model.AuditSession, error) {
	sess := &model.AuditSession{
		ID:   uuid.NewString(),
		Step: model.StepSetup,
		VisitDetails: model.VisitDetails{
			VisitorNames: make([]string, 3),
		},
		Sections:  make(map[string]*model.SectionData),
		CreatedAt: time.Now().UTC(),
	}
	s.store.Put(sess)
	return sess, nil
}

// Get returns a copy of the session.
func (s *AuditService) Get(ctx context.Context, id string) (*model.AuditSession, error) {
	return s.store.Get(id)
}

// UpdateSetup applies a partial setup edit. Any edit clears the saved flag.
func (s *AuditService) UpdateSetup(ctx context.Context, id string, upd AuditSetupUpdate) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		if upd.ServiceType != nil {
			if !upd.ServiceType.Valid() {
				return fmt.Errorf("%w: unknown service type %q", ErrInvalid, *upd.ServiceType)
			}
			sess.Setup.ServiceType = *upd.ServiceType
		}
		if upd.Country != nil && *upd.Country != sess.Setup.Country {
			if !upd.Country.Valid() {
				return fmt.Errorf("%w: unknown country %q", ErrInvalid, *upd.Country)
			}
			n, err := s.seq.Next(ctx)
			if err != nil {
				return fmt.Errorf("issue audit number: %w", err)
			}
			sess.Setup.Country = *upd.Country
			sess.Setup.AuditNumber = fmt.Sprintf("%s-%d", upd.Country.Prefix(), n)
			s.initSections(sess)
		}
		if upd.ServiceName != nil {
			sess.Setup.ServiceName = *upd.ServiceName
		}
		if upd.KeyContact1 != nil {
			sess.Setup.KeyContact1 = *upd.KeyContact1
		}
		if upd.KeyContact2 != nil {
			sess.Setup.KeyContact2 = *upd.KeyContact2
		}
		sess.IsSetupSaved = false
		return nil
	})
}

// SaveSetup marks the setup complete once it passes validation.
func (s *AuditService) SaveSetup(ctx context.Context, id string) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		if err := s.checkSetup(sess.Setup); err != nil {
			return err
		}
		sess.IsSetupSaved = true
		return nil
	})
}

// Start moves the session out of setup: into visit-details for supported
// living and day services, straight into the audit otherwise.
func (s *AuditService) Start(ctx context.Context, id string) (*model.AuditSession, error) {
	return s.store.Update(id, s.advanceFromSetup)
}

// UpdateVisitDetails applies a partial visit-details edit.
func (s *AuditService) UpdateVisitDetails(ctx context.Context, id string, upd VisitDetailsUpdate) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		vd := &sess.VisitDetails
		if upd.DateOfVisit != nil {
			vd.DateOfVisit = *upd.DateOfVisit
		}
		if upd.TimeOfVisit != nil {
			vd.TimeOfVisit = *upd.TimeOfVisit
		}
		if upd.GreeterName != nil {
			vd.GreeterName = *upd.GreeterName
		}
		if upd.IDChecked != nil {
			vd.IDChecked = *upd.IDChecked
		}
		if upd.ClientsInService != nil {
			vd.ClientsInService = *upd.ClientsInService
		}
		if upd.StaffOnShift != nil {
			vd.StaffOnShift = *upd.StaffOnShift
		}
		if upd.HasOtherVisitors != nil {
			vd.HasOtherVisitors = *upd.HasOtherVisitors
		}
		if upd.VisitorNames != nil {
			if len(upd.VisitorNames) > 3 {
				return fmt.Errorf("%w: at most 3 visitor names", ErrInvalid)
			}
			vd.VisitorNames = append([]string(nil), upd.VisitorNames...)
		}
		if upd.ClientFocus1 != nil {
			vd.ClientFocus1 = *upd.ClientFocus1
		}
		if upd.ClientFocus2 != nil {
			vd.ClientFocus2 = *upd.ClientFocus2
		}
		sess.IsVisitDetailsSaved = false
		return nil
	})
}

// SaveVisitDetails marks the visit details complete once they validate.
func (s *AuditService) SaveVisitDetails(ctx context.Context, id string) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		if err := s.checkVisitDetails(sess.VisitDetails); err != nil {
			return err
		}
		sess.IsVisitDetailsSaved = true
		return nil
	})
}

// UpdateAnswer records a yes/no on one question and rederives the section
// score. A changed answer invalidates the section's saved-score flag.
func (s *AuditService) UpdateAnswer(ctx context.Context, id, sectionID, questionID string, ans model.Answer) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		data, ok := sess.Sections[sectionID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
		}
		for i := range data.Answers {
			if data.Answers[i].QuestionID == questionID {
				data.Answers[i].Answer = ans
				data.Score = model.SectionScore(data.Answers)
				data.IsSaved = false
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	})
}

// UpdateNarrative replaces a section narrative, invalidating its saved flag.
func (s *AuditService) UpdateNarrative(ctx context.Context, id, sectionID, text string) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		data, ok := sess.Sections[sectionID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
		}
		data.Narrative = text
		data.IsNarrativeSaved = false
		return nil
	})
}

// SaveScore locks in a section score. Every question must be answered.
func (s *AuditService) SaveScore(ctx context.Context, id, sectionID string) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		data, ok := sess.Sections[sectionID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
		}
		if !data.AllAnswered() {
			return fmt.Errorf("%w: %d of %d questions answered", ErrNotReady, data.AnsweredCount(), len(data.Answers))
		}
		data.IsSaved = true
		return nil
	})
}

// SaveNarrative locks in a section narrative. The word count must fall inside
// the section's band.
func (s *AuditService) SaveNarrative(ctx context.Context, id, sectionID string) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		def, ok := s.bank.AuditSection(sess.Setup.Country, sectionID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
		}
		data, ok := sess.Sections[sectionID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
		}
		if !model.NarrativeValid(data.Narrative, def.WordCountMin, def.WordCountMax) {
			return fmt.Errorf("%w: narrative is %d words, needs %d-%d",
				ErrNotReady, model.WordCount(data.Narrative), def.WordCountMin, def.WordCountMax)
		}
		data.IsNarrativeSaved = true
		return nil
	})
}

// Next advances one step. From an audit section the default path saves the
// narrative first, which requires a fully answered sheet and an in-band word
// count; saveNarrative=false is the explicit continue-without-saving escape.
func (s *AuditService) Next(ctx context.Context, id string, saveNarrative bool) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		switch sess.Step {
		case model.StepSetup:
			return s.advanceFromSetup(sess)
		case model.StepVisitDetails:
			if err := s.checkVisitDetails(sess.VisitDetails); err != nil {
				return err
			}
			sess.IsVisitDetailsSaved = true
			sess.Step = model.StepAudit
			sess.CurrentSectionIndex = 0
			return nil
		case model.StepAudit:
			sections := s.bank.AuditSections(sess.Setup.Country)
			if len(sections) == 0 {
				return fmt.Errorf("%w: no country selected", ErrNotReady)
			}
			if saveNarrative {
				def := sections[sess.CurrentSectionIndex]
				data := sess.Sections[def.ID]
				if data == nil {
					return fmt.Errorf("%w: %s", ErrUnknownSection, def.ID)
				}
				if !data.AllAnswered() {
					return fmt.Errorf("%w: %d of %d questions answered", ErrNotReady, data.AnsweredCount(), len(data.Answers))
				}
				if !model.NarrativeValid(data.Narrative, def.WordCountMin, def.WordCountMax) {
					return fmt.Errorf("%w: narrative is %d words, needs %d-%d",
						ErrNotReady, model.WordCount(data.Narrative), def.WordCountMin, def.WordCountMax)
				}
				data.IsNarrativeSaved = true
			}
			if sess.CurrentSectionIndex < len(sections)-1 {
				sess.CurrentSectionIndex++
			} else {
				sess.Step = model.StepReport
			}
			return nil
		}
		return fmt.Errorf("%w: cannot advance from %s", ErrNotReady, sess.Step)
	})
}

// Previous steps back one screen. Stepping back never loses entered data and
// is never gated.
func (s *AuditService) Previous(ctx context.Context, id string) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		switch sess.Step {
		case model.StepReport:
			sess.Step = model.StepAudit
			if n := len(s.bank.AuditSections(sess.Setup.Country)); n > 0 {
				sess.CurrentSectionIndex = n - 1
			}
		case model.StepAudit:
			if sess.CurrentSectionIndex > 0 {
				sess.CurrentSectionIndex--
			} else if sess.Setup.ServiceType.RequiresVisitDetails() {
				sess.Step = model.StepVisitDetails
			} else {
				sess.Step = model.StepSetup
			}
		case model.StepVisitDetails:
			sess.Step = model.StepSetup
		}
		return nil
	})
}

// Goto jumps straight to an audit section by index. Jumps are ungated once
// the audit has begun, but cannot bypass the setup or visit-details gates.
func (s *AuditService) Goto(ctx context.Context, id string, index int) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		if sess.Step == model.StepSetup || sess.Step == model.StepVisitDetails {
			return fmt.Errorf("%w: audit not started", ErrNotReady)
		}
		sections := s.bank.AuditSections(sess.Setup.Country)
		if len(sections) == 0 {
			return fmt.Errorf("%w: no country selected", ErrNotReady)
		}
		if index < 0 || index >= len(sections) {
			return fmt.Errorf("%w: section index out of range", ErrInvalid)
		}
		sess.Step = model.StepAudit
		sess.CurrentSectionIndex = index
		return nil
	})
}

// Reset wipes the session back to a blank setup step, keeping its id. The
// audit number is discarded; a new one is issued on the next country pick.
func (s *AuditService) Reset(ctx context.Context, id string) (*model.AuditSession, error) {
	return s.store.Update(id, func(sess *model.AuditSession) error {
		sess.Setup = model.AuditSetup{}
		sess.VisitDetails = model.VisitDetails{VisitorNames: make([]string, 3)}
		sess.Step = model.StepSetup
		sess.CurrentSectionIndex = 0
		sess.Sections = make(map[string]*model.SectionData)
		sess.IsSetupSaved = false
		sess.IsVisitDetailsSaved = false
		return nil
	})
}

func (s *AuditService) advanceFromSetup(sess *model.AuditSession) error {
	if err := s.checkSetup(sess.Setup); err != nil {
		return err
	}
	sess.IsSetupSaved = true
	if sess.Setup.ServiceType.RequiresVisitDetails() {
		sess.Step = model.StepVisitDetails
	} else {
		sess.Step = model.StepAudit
		sess.CurrentSectionIndex = 0
	}
	return nil
}

func (s *AuditService) checkSetup(setup model.AuditSetup) error {
	if !setup.ServiceType.Valid() || !setup.Country.Valid() {
		return fmt.Errorf("%w: service type and country required", ErrNotReady)
	}
	if err := s.validate.Struct(setup); err != nil {
		return fmt.Errorf("%w: setup incomplete", ErrNotReady)
	}
	// Contact tags would also bind the optional second contact, so the
	// primary contact is checked by hand.
	for _, field := range []string{setup.KeyContact1.Name, setup.KeyContact1.Email, setup.KeyContact1.Phone} {
		if err := s.validate.Var(field, "notblank"); err != nil {
			return fmt.Errorf("%w: key contact name, email and phone required", ErrNotReady)
		}
	}
	return nil
}

func (s *AuditService) checkVisitDetails(vd model.VisitDetails) error {
	if err := s.validate.Struct(vd); err != nil {
		return fmt.Errorf("%w: visit details incomplete", ErrNotReady)
	}
	if !vd.IDChecked.Answered() || !vd.HasOtherVisitors.Answered() {
		return fmt.Errorf("%w: visit details incomplete", ErrNotReady)
	}
	return nil
}

// initSections rebuilds every section's working state for the current
// country, discarding whatever was entered under the previous one.
func (s *AuditService) initSections(sess *model.AuditSession) {
	sections := s.bank.AuditSections(sess.Setup.Country)
	sess.Sections = make(map[string]*model.SectionData, len(sections))
	for _, def := range sections {
		data := &model.SectionData{
			SectionID: def.ID,
			Answers:   make([]model.QuestionAnswer, 0, len(def.Questions)),
		}
		for _, q := range def.Questions {
			data.Answers = append(data.Answers, model.QuestionAnswer{QuestionID: q.ID})
		}
		sess.Sections[def.ID] = data
	}
}
