package service

import (
	"fmt"
	"time"

	"careinspect/internal/bank"
	"careinspect/internal/model"
)

// ReportService assembles read-only report snapshots from session state.
// Assembly never fails: missing data degrades to zero scores rather than
// erroring, so a report is always viewable.
type ReportService struct {
	bank *bank.Bank
	now  func() time.Time
}

// NewReportService creates a report assembler over the question bank.
func NewReportService(b *bank.Bank) *ReportService {
	return &ReportService{bank: b, now: time.Now}
}

// AssembleInspection builds the open-ended inspection report. Only sections
// the inspector actually touched appear; the overall score is the mean of
// those section scores, or zero when nothing was recorded.
func (s *ReportService) AssembleInspection(sess *model.InspectionSession) *model.InspectionReport {
	now := s.now()
	rep := &model.InspectionReport{
		ID:                   fmt.Sprintf("QA-%d-%02d%02d", now.Year(), int(now.Month()), now.Day()),
		PropertyName:         sess.Setup.PropertyName,
		ProviderName:         sess.Setup.ProviderName,
		Date:                 now.Format("2 January 2006"),
		ResidentsInterviewed: sess.Setup.ResidentsInterviewed,
		TotalResidents:       sess.Setup.TotalResidents,
		Actions:              sess.Actions,
	}

	total := 0
	for _, def := range s.bank.InspectionSections() {
		r, ok := sess.Responses[def.ID]
		if !ok {
			continue
		}
		sec := model.ReportSection{
			SectionID:    def.ID,
			Number:       def.Number,
			Title:        def.Title,
			Score:        r.Score,
			Status:       r.Status,
			Quotes:       r.Quotes,
			WhyThisScore: r.WhyThisScore,
		}
		for _, qr := range r.Responses {
			sec.Findings = append(sec.Findings, model.ReportFinding{
				QuestionID:   qr.QuestionID,
				QuestionText: questionText(def, qr.QuestionID),
				Finding:      qr.Finding,
			})
		}
		switch r.Status {
		case model.StatusMeetingStandard:
			rep.MeetingStandard++
		case model.StatusImprovementNeeded:
			rep.ImprovementNeeded++
		case model.StatusInadequate:
			rep.Inadequate++
		}
		total += r.Score
		rep.Sections = append(rep.Sections, sec)
	}

	overall := 0.0
	if len(rep.Sections) > 0 {
		overall = float64(total) / float64(len(rep.Sections))
	}
	rep.OverallScore = model.RoundScore(overall)
	rep.OverallVerdict = model.VerdictFromScore(overall)
	rep.AssessmentSummary = assessmentSummary(rep)
	return rep
}

// AssembleAudit builds the compliance-audit report over the country's full
// section set, whether or not every section was worked through.
func (s *ReportService) AssembleAudit(sess *model.AuditSession) *model.AuditReport {
	sections := s.bank.AuditSections(sess.Setup.Country)
	rep := &model.AuditReport{
		AuditNumber:      sess.Setup.AuditNumber,
		ServiceName:      sess.Setup.ServiceName,
		ServiceType:      sess.Setup.ServiceType,
		ServiceTypeLabel: sess.Setup.ServiceType.Label(),
		Country:          sess.Setup.Country,
		CountryLabel:     sess.Setup.Country.Label(),
		KeyContact:       sess.Setup.KeyContact1,
		VisitDetails:     sess.VisitDetails,
		GeneratedAt:      s.now().Format("2 January 2006 15:04"),
	}

	for _, def := range sections {
		data := sess.Sections[def.ID]
		if data == nil {
			data = &model.SectionData{SectionID: def.ID}
		}
		pct := model.Percent(data.Score, def.MaxScore)
		sec := model.AuditReportSection{
			SectionID:        def.ID,
			Title:            def.Title,
			CountryPrefix:    def.CountryPrefix,
			Score:            data.Score,
			MaxScore:         def.MaxScore,
			Percent:          pct,
			Verdict:          model.AuditVerdictFromPercent(pct),
			Narrative:        data.Narrative,
			IsSaved:          data.IsSaved,
			IsNarrativeSaved: data.IsNarrativeSaved,
		}
		for _, q := range def.Questions {
			sec.Answers = append(sec.Answers, model.AuditReportAnswer{
				QuestionID: q.ID,
				Number:     q.Number,
				Text:       q.Text,
				Answer:     answerFor(data, q.ID),
			})
		}
		rep.TotalScore += data.Score
		rep.TotalMaxScore += def.MaxScore
		rep.Sections = append(rep.Sections, sec)
	}

	rep.Percentage = model.Percent(rep.TotalScore, rep.TotalMaxScore)
	rep.Verdict = model.AuditVerdictFromPercent(rep.Percentage)
	return rep
}

func questionText(def model.Section, questionID string) string {
	for _, q := range def.Questions {
		if q.ID == questionID {
			return q.Text
		}
	}
	return ""
}

func answerFor(data *model.SectionData, questionID string) model.Answer {
	for _, a := range data.Answers {
		if a.QuestionID == questionID {
			return a.Answer
		}
	}
	return model.Unanswered
}

// assessmentSummary writes the one-paragraph overview at the top of the
// report from the section tallies.
func assessmentSummary(rep *model.InspectionReport) string {
	if len(rep.Sections) == 0 {
		return "No sections were assessed during this inspection."
	}
	return fmt.Sprintf(
		"%s scored %.1f overall across %d assessed sections: %d meeting the standard, %d needing improvement and %d inadequate.",
		rep.PropertyName, rep.OverallScore, len(rep.Sections),
		rep.MeetingStandard, rep.ImprovementNeeded, rep.Inadequate)
}
