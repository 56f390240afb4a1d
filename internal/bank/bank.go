// Package bank holds the immutable question banks for both flows. Content is
// compiled in; there is no runtime authoring.
package bank

import "careinspect/internal/model"

// Bank exposes read-only access to the section definitions.
type Bank struct{}

// New returns the process-wide question bank.
func New() *Bank {
	return &Bank{}
}

// InspectionSections returns the fixed 15-section open-ended bank in display
// order.
func (b *Bank) InspectionSections() []model.Section {
	return inspectionSections
}

// ClosingQuestions returns the direct closing prompts asked at the end of an
// interview.
func (b *Bank) ClosingQuestions() []string {
	return closingQuestions
}

// InspectionSection looks up a section by id. The second return is false
// when the id is unknown.
func (b *Bank) InspectionSection(id string) (model.Section, bool) {
	for _, s := range inspectionSections {
		if s.ID == id {
			return s, true
		}
	}
	return model.Section{}, false
}

// AuditSections returns the compliance sections for a country. Only the
// Scotland set is authored; other countries currently receive the Scotland
// content relabeled with their own prefix, a placeholder until per-country
// frameworks are written. Unknown countries get nothing.
func (b *Bank) AuditSections(country model.Country) []model.AuditSection {
	if !country.Valid() {
		return nil
	}
	if country == model.CountryScotland {
		return scotlandSections
	}
	out := make([]model.AuditSection, len(scotlandSections))
	copy(out, scotlandSections)
	for i := range out {
		out[i].CountryPrefix = country.Label()
	}
	return out
}

// AuditSection looks up one compliance section by id within a country's set.
func (b *Bank) AuditSection(country model.Country, id string) (model.AuditSection, bool) {
	for _, s := range b.AuditSections(country) {
		if s.ID == id {
			return s, true
		}
	}
	return model.AuditSection{}, false
}

// TotalMaxScore sums the max scores of the given sections.
func TotalMaxScore(sections []model.AuditSection) int {
	total := 0
	for _, s := range sections {
		total += s.MaxScore
	}
	return total
}
