package model

import (
	"math"
	"strings"
)

// AuditVerdict is the compliance verdict derived from a percentage.
type AuditVerdict string

const (
	AuditMeetingStandards  AuditVerdict = "meeting-standards"
	AuditImprovementNeeded AuditVerdict = "improvement-needed"
	AuditInadequate        AuditVerdict = "inadequate"
)

// StatusFromScore derives a section status from its 1-10 score.
func StatusFromScore(score int) SectionStatus {
	switch {
	case score >= 7:
		return StatusMeetingStandard
	case score >= 5:
		return StatusImprovementNeeded
	}
	return StatusInadequate
}

// VerdictFromScore derives the overall verdict from the mean section score.
// Boundaries match StatusFromScore; only the labels differ.
func VerdictFromScore(score float64) Verdict {
	switch {
	case score >= 7:
		return VerdictGood
	case score >= 5:
		return VerdictRequiresImprovement
	}
	return VerdictInadequate
}

// AuditVerdictFromPercent derives the compliance verdict from an overall or
// per-section percentage.
func AuditVerdictFromPercent(percent int) AuditVerdict {
	switch {
	case percent >= 80:
		return AuditMeetingStandards
	case percent >= 60:
		return AuditImprovementNeeded
	}
	return AuditInadequate
}

// SectionScore counts yes answers, one point each.
func SectionScore(answers []QuestionAnswer) int {
	score := 0
	for _, a := range answers {
		if a.Answer == Yes {
			score++
		}
	}
	return score
}

// Percent returns score/max as a whole percentage, 0 when max is 0.
func Percent(score, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(max) * 100))
}

// RoundScore rounds a mean score to one decimal place.
func RoundScore(score float64) float64 {
	return math.Round(score*10) / 10
}

// WordCount counts whitespace-separated words; blank text counts zero.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// NarrativeValid reports whether the narrative word count falls inside the
// inclusive [min, max] band.
func NarrativeValid(text string, min, max int) bool {
	n := WordCount(text)
	return n >= min && n <= max
}
