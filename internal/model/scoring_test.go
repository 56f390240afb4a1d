package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromScore(t *testing.T) {
	assert.Equal(t, StatusMeetingStandard, StatusFromScore(10))
	assert.Equal(t, StatusMeetingStandard, StatusFromScore(7))
	assert.Equal(t, StatusImprovementNeeded, StatusFromScore(6))
	assert.Equal(t, StatusImprovementNeeded, StatusFromScore(5))
	assert.Equal(t, StatusInadequate, StatusFromScore(4))
	assert.Equal(t, StatusInadequate, StatusFromScore(1))
}

func TestVerdictFromScore(t *testing.T) {
	assert.Equal(t, VerdictGood, VerdictFromScore(7.0))
	assert.Equal(t, VerdictRequiresImprovement, VerdictFromScore(6.9))
	assert.Equal(t, VerdictRequiresImprovement, VerdictFromScore(5.0))
	assert.Equal(t, VerdictInadequate, VerdictFromScore(4.9))
}

func TestAuditVerdictFromPercent(t *testing.T) {
	assert.Equal(t, AuditMeetingStandards, AuditVerdictFromPercent(100))
	assert.Equal(t, AuditMeetingStandards, AuditVerdictFromPercent(80))
	assert.Equal(t, AuditImprovementNeeded, AuditVerdictFromPercent(79))
	assert.Equal(t, AuditImprovementNeeded, AuditVerdictFromPercent(60))
	assert.Equal(t, AuditInadequate, AuditVerdictFromPercent(59))
	assert.Equal(t, AuditInadequate, AuditVerdictFromPercent(0))
}

func TestSectionScore(t *testing.T) {
	answers := []QuestionAnswer{
		{QuestionID: "q1", Answer: Yes},
		{QuestionID: "q2", Answer: No},
		{QuestionID: "q3", Answer: Unanswered},
		{QuestionID: "q4", Answer: Yes},
	}
	assert.Equal(t, 2, SectionScore(answers))
	assert.Equal(t, 0, SectionScore(nil))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50, Percent(10, 20))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(20, 20))
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 0, Percent(5, -1))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 7.3, RoundScore(7.25))
	assert.Equal(t, 6.7, RoundScore(20.0/3.0))
	assert.Equal(t, 0.0, RoundScore(0))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t "))
	assert.Equal(t, 3, WordCount("the quick fox"))
	assert.Equal(t, 3, WordCount("  the\nquick\tfox  "))
}

func TestNarrativeValid(t *testing.T) {
	assert.True(t, NarrativeValid("one two three", 3, 3))
	assert.False(t, NarrativeValid("one two", 3, 5))
	assert.False(t, NarrativeValid("one two three four five six", 3, 5))
}

func TestAnswerJSON(t *testing.T) {
	type sheet struct {
		A Answer `json:"a"`
		B Answer `json:"b"`
		C Answer `json:"c"`
	}

	data, err := json.Marshal(sheet{A: Yes, B: No, C: Unanswered})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":true,"b":false,"c":null}`, string(data))

	var got sheet
	require.NoError(t, json.Unmarshal([]byte(`{"a":true,"b":false,"c":null}`), &got))
	assert.Equal(t, Yes, got.A)
	assert.Equal(t, No, got.B)
	assert.Equal(t, Unanswered, got.C)

	var bad Answer
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &bad))
}
