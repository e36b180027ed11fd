package filters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

func TestSuspectDevice(t *testing.T) {
	table := domain.NewTable([]domain.Row{
		rowWith("1", "y", ""),
		rowWith("2", "n", ""),
		rowWith("3", domain.Unknown, ""),
		rowWith("4", "y", ""),
	})

	got := SuspectDevice{}.Apply(table)

	assert.Equal(t, 2, got.Len())
	assert.Equal(t, 4, table.Len())
	desc := SuspectDevice{}.Describe(got)
	assert.Contains(t, desc, "<b>2</b>")
	assert.Contains(t, desc, fieldSpecURL)
}

func TestHasRelevantProblemType(t *testing.T) {
	tests := []struct {
		problems string
		want     bool
	}{
		{"inadequate or imprecise result or readings", true},
		{"adverse event without identified device or use problem|program or algorithm execution failure", true},
		{"Patient Data Problem", true},
		{"application program problem: parameter calculation error", false},
		{"application program problem|patient data problem", true},
		{"material integrity problem", false},
		{domain.Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.problems, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRelevantProblemType(rowWith("1", "y", tt.problems)))
		})
	}
}

func TestRelevantProblemType_FlagOnlyKeepsRows(t *testing.T) {
	table := domain.NewTable([]domain.Row{
		rowWith("1", "y", "patient data problem"),
		rowWith("2", "y", "battery problem"),
	})
	stage := RelevantProblemType{Mode: FlagOnly}

	got := stage.Apply(table)

	require.Equal(t, 2, got.Len())
	assert.Equal(t, []domain.Column{ColHasRelevantProblemType}, got.FlagColumns())
	assert.Equal(t, 1, got.CountFlag(ColHasRelevantProblemType))
	assert.Empty(t, table.FlagColumns())

	desc := stage.Describe(got)
	assert.Contains(t, desc, "<b>2</b>")
	assert.Contains(t, desc, "<b>1</b>")
}

func TestRelevantProblemType_FilterMode(t *testing.T) {
	table := domain.NewTable([]domain.Row{
		rowWith("1", "y", "patient data problem"),
		rowWith("2", "y", "battery problem"),
	})
	stage := RelevantProblemType{Mode: FlagAndFilter}

	got := stage.Apply(table)

	require.Equal(t, 1, got.Len())
	assert.Equal(t, "1", got.Rows()[0].ReportID)
	assert.Contains(t, stage.Describe(got), "<b>1</b>")
}

func TestParseProblemTypeMode(t *testing.T) {
	mode, err := ParseProblemTypeMode("")
	require.NoError(t, err)
	assert.Equal(t, FlagOnly, mode)

	mode, err = ParseProblemTypeMode(" Filter ")
	require.NoError(t, err)
	assert.Equal(t, FlagAndFilter, mode)

	_, err = ParseProblemTypeMode("drop")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestTermPresence(t *testing.T) {
	withComments := func(id, main, manufacturer string) domain.Row {
		r := rowWith(id, "y", "")
		r.EventMainComments = main
		r.EventManufacturerComments = manufacturer
		return r
	}
	table := domain.NewTable([]domain.Row{
		withComments("1", "uses machine learning to triage", ""),
		withComments("2", "", "the Machine Learning model drifted"),
		withComments("3", "no mention", domain.Unknown),
	})
	stage := NewTermPresence()

	got := stage.Apply(table)

	require.Equal(t, 3, got.Len())
	entries := got.Entries()
	assert.True(t, entries[0].Flags[ColMentionsMachineLearning])
	assert.True(t, entries[1].Flags[ColMentionsMachineLearning])
	assert.False(t, entries[2].Flags[ColMentionsMachineLearning])
	assert.Contains(t, stage.Describe(got), "<b>2</b> mention")
}

func TestTermPresence_EmptyTermNeverMatches(t *testing.T) {
	assert.False(t, TermPresence{}.Matches(rowWith("1", "y", "")))
}
