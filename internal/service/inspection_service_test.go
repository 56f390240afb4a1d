package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careinspect/internal/bank"
	"careinspect/internal/model"
	"careinspect/internal/store"
)

func newInspectionFixture(t *testing.T) (*InspectionService, *model.InspectionSession) {
	t.Helper()
	svc := NewInspectionService(store.NewInspectionStore(), bank.New())
	sess, err := svc.Create(context.Background())
	require.NoError(t, err)
	return svc, sess
}

func validInspectionSetup() model.InspectionSetup {
	return model.InspectionSetup{
		PropertyName:         "Rowan House",
		ProviderName:         "Northside Care Ltd",
		ResidentsInterviewed: 4,
		TotalResidents:       12,
	}
}

func TestInspectionCreateStartsOnSetup(t *testing.T) {
	_, sess := newInspectionFixture(t)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, model.StepSetup, sess.Step)
	assert.Empty(t, sess.Responses)
}

func TestInspectionStartRequiresCompleteSetup(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotReady)

	// Whitespace-only names do not count as filled in.
	setup := validInspectionSetup()
	setup.PropertyName = "   "
	_, err = svc.UpdateSetup(ctx, sess.ID, setup)
	require.NoError(t, err)
	_, err = svc.Start(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = svc.UpdateSetup(ctx, sess.ID, validInspectionSetup())
	require.NoError(t, err)
	got, err := svc.Start(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepQuestioning, got.Step)
	assert.Equal(t, 0, got.CurrentSectionIndex)
}

func TestInspectionSaveSectionMaterializesWithDefaults(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	got, err := svc.SaveSection(ctx, sess.ID, "support-understanding", SectionResponseUpdate{
		Responses: []model.QuestionResponse{{QuestionID: "q1-1", Finding: "Staff visit daily as promised."}},
	})
	require.NoError(t, err)

	r := got.Responses["support-understanding"]
	require.NotNil(t, r)
	assert.Equal(t, 5, r.Score, "untouched score defaults to the midpoint")
	assert.Equal(t, model.StatusImprovementNeeded, r.Status)
	assert.Len(t, r.Responses, 6, "one finding slot per question")
	assert.Equal(t, "Staff visit daily as promised.", r.Responses[0].Finding)
	assert.Empty(t, r.Responses[1].Finding)
	assert.False(t, r.Complete(), "no justification yet")
}

func TestInspectionSaveSectionScore(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	score := 8
	got, err := svc.SaveSection(ctx, sess.ID, "reliability", SectionResponseUpdate{Score: &score})
	require.NoError(t, err)
	assert.Equal(t, 8, got.Responses["reliability"].Score)
	assert.Equal(t, model.StatusMeetingStandard, got.Responses["reliability"].Status)

	for _, bad := range []int{0, 11, -3} {
		badScore := bad
		_, err = svc.SaveSection(ctx, sess.ID, "reliability", SectionResponseUpdate{Score: &badScore})
		assert.ErrorIs(t, err, ErrInvalid, "score %d", bad)
	}

	// The failed write must not have clobbered the good score.
	cur, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, cur.Responses["reliability"].Score)
}

func TestInspectionSaveSectionUnknownIDs(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	_, err := svc.SaveSection(ctx, sess.ID, "nope", SectionResponseUpdate{})
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = svc.SaveSection(ctx, sess.ID, "reliability", SectionResponseUpdate{
		Responses: []model.QuestionResponse{{QuestionID: "q99-1", Finding: "x"}},
	})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestInspectionQuotes(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	got, err := svc.AddQuote(ctx, sess.ID, "respect-dignity", model.Quote{
		Text:       "They knock before coming in, always.",
		ResidentID: "R1",
	})
	require.NoError(t, err)
	quotes := got.Responses["respect-dignity"].Quotes
	require.Len(t, quotes, 1)
	assert.Equal(t, model.SentimentNeutral, quotes[0].Sentiment, "sentiment defaults to neutral")

	_, err = svc.AddQuote(ctx, sess.ID, "respect-dignity", model.Quote{Text: " ", ResidentID: "R1"})
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = svc.AddQuote(ctx, sess.ID, "respect-dignity", model.Quote{Text: "x", ResidentID: "R1", Sentiment: "angry"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.RemoveQuote(ctx, sess.ID, "respect-dignity", 5)
	assert.ErrorIs(t, err, ErrInvalid)

	got, err = svc.RemoveQuote(ctx, sess.ID, "respect-dignity", 0)
	require.NoError(t, err)
	assert.Empty(t, got.Responses["respect-dignity"].Quotes)
}

func TestInspectionActions(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	got, err := svc.AddAction(ctx, sess.ID, model.Action{
		Title:       "Review medication storage",
		Description: "Lock box broken in flat 3",
		Deadline:    "2026-10-01",
	})
	require.NoError(t, err)
	require.Len(t, got.Actions, 1)
	assert.NotEmpty(t, got.Actions[0].ID, "id assigned server-side")
	assert.Equal(t, model.PriorityMedium, got.Actions[0].Priority, "priority defaults to medium")

	_, err = svc.AddAction(ctx, sess.ID, model.Action{Title: "  "})
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = svc.AddAction(ctx, sess.ID, model.Action{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalid)

	got, err = svc.RemoveAction(ctx, sess.ID, got.Actions[0].ID)
	require.NoError(t, err)
	assert.Empty(t, got.Actions)
}

func TestInspectionGotoRequiresStart(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	// Jumping must not bypass the setup gate.
	_, err := svc.Goto(ctx, sess.ID, 3)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = svc.UpdateSetup(ctx, sess.ID, validInspectionSetup())
	require.NoError(t, err)
	_, err = svc.Start(ctx, sess.ID)
	require.NoError(t, err)

	got, err := svc.Goto(ctx, sess.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentSectionIndex)
}

func TestInspectionNavigation(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateSetup(ctx, sess.ID, validInspectionSetup())
	require.NoError(t, err)
	_, err = svc.Start(ctx, sess.ID)
	require.NoError(t, err)

	got, err := svc.Next(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentSectionIndex)

	got, err = svc.Previous(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentSectionIndex)

	// Backing up from the first section stays put.
	got, err = svc.Previous(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentSectionIndex)
	assert.Equal(t, model.StepQuestioning, got.Step)

	got, err = svc.Goto(ctx, sess.ID, 14)
	require.NoError(t, err)
	assert.Equal(t, 14, got.CurrentSectionIndex)

	_, err = svc.Goto(ctx, sess.ID, 15)
	assert.ErrorIs(t, err, ErrInvalid)

	// Past the last section lies the report.
	got, err = svc.Next(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepReport, got.Step)

	// And back again.
	got, err = svc.Previous(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepQuestioning, got.Step)
	assert.Equal(t, 14, got.CurrentSectionIndex)
}

func TestInspectionProgress(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	pct, err := svc.Progress(ctx, sess.ID)
	require.NoError(t, err)
	assert.Zero(t, pct)

	why := "Consistent answers from all four residents."
	for _, id := range []string{"support-understanding", "reliability", "respect-dignity", "choice-control"} {
		_, err = svc.SaveSection(ctx, sess.ID, id, SectionResponseUpdate{WhyThisScore: &why})
		require.NoError(t, err)
	}
	// A touched but unjustified section does not count.
	score := 3
	_, err = svc.SaveSection(ctx, sess.ID, "medication", SectionResponseUpdate{Score: &score})
	require.NoError(t, err)

	// The exact fraction, not a whole percent.
	pct, err = svc.Progress(ctx, sess.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/15.0*100, pct, 1e-9, "4 of 15 sections complete")
}

func TestInspectionReset(t *testing.T) {
	svc, sess := newInspectionFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateSetup(ctx, sess.ID, validInspectionSetup())
	require.NoError(t, err)
	_, err = svc.Start(ctx, sess.ID)
	require.NoError(t, err)
	why := "fine"
	_, err = svc.SaveSection(ctx, sess.ID, "reliability", SectionResponseUpdate{WhyThisScore: &why})
	require.NoError(t, err)

	got, err := svc.Reset(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID, "reset keeps the session id")
	assert.Equal(t, model.StepSetup, got.Step)
	assert.Equal(t, model.InspectionSetup{}, got.Setup)
	assert.Empty(t, got.Responses)
	assert.Empty(t, got.Actions)
}
