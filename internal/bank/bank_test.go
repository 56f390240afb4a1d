package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careinspect/internal/model"
)

func TestInspectionSections(t *testing.T) {
	b := New()
	sections := b.InspectionSections()
	require.Len(t, sections, 15)

	seen := map[string]bool{}
	for i, sec := range sections {
		assert.Equal(t, i+1, sec.Number, "sections numbered in order")
		assert.NotEmpty(t, sec.ID)
		assert.NotEmpty(t, sec.Title)
		assert.NotEmpty(t, sec.Purpose)
		assert.NotEmpty(t, sec.Questions)
		assert.False(t, seen[sec.ID], "duplicate section id %s", sec.ID)
		seen[sec.ID] = true
	}
}

func TestInspectionSectionLookup(t *testing.T) {
	b := New()

	sec, ok := b.InspectionSection("safeguarding")
	require.True(t, ok)
	assert.Equal(t, 9, sec.Number)

	_, ok = b.InspectionSection("nope")
	assert.False(t, ok)
}

func TestClosingQuestions(t *testing.T) {
	assert.Len(t, New().ClosingQuestions(), 4)
}

func TestAuditSectionsScotland(t *testing.T) {
	b := New()
	sections := b.AuditSections(model.CountryScotland)
	require.Len(t, sections, 8)

	totalQuestions := 0
	number := 0
	for _, sec := range sections {
		assert.Equal(t, len(sec.Questions), sec.MaxScore, "%s: one point per question", sec.ID)
		assert.Greater(t, sec.WordCountMax, 0)
		assert.LessOrEqual(t, sec.WordCountMin, sec.WordCountMax)
		for _, q := range sec.Questions {
			number++
			assert.Equal(t, number, q.Number, "question numbers run contiguously across sections")
		}
		totalQuestions += len(sec.Questions)
	}
	assert.Equal(t, 100, totalQuestions)
	assert.Equal(t, 100, TotalMaxScore(sections))

	first := sections[0]
	assert.Equal(t, "person-centred-care", first.ID)
	assert.Len(t, first.Questions, 20)
	assert.Equal(t, 335, first.WordCountMin)
	assert.Equal(t, 350, first.WordCountMax)
}

func TestAuditSectionsOtherCountriesRelabeled(t *testing.T) {
	b := New()
	england := b.AuditSections(model.CountryEngland)
	scotland := b.AuditSections(model.CountryScotland)
	require.Len(t, england, len(scotland))

	for i := range england {
		assert.Equal(t, scotland[i].ID, england[i].ID)
		assert.Equal(t, "England", england[i].CountryPrefix)
	}

	// Relabeling must not leak into the Scotland set.
	assert.NotEqual(t, "England", scotland[0].CountryPrefix)
}

func TestAuditSectionsUnknownCountry(t *testing.T) {
	assert.Nil(t, New().AuditSections(model.Country("mars")))
}

func TestAuditSectionLookup(t *testing.T) {
	b := New()

	sec, ok := b.AuditSection(model.CountryScotland, "medication-management")
	require.True(t, ok)
	assert.Equal(t, 10, sec.MaxScore)

	_, ok = b.AuditSection(model.CountryScotland, "nope")
	assert.False(t, ok)
}
