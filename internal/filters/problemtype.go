package filters

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure RelevantProblemType implements the interface.
var _ driven.FilterStage = RelevantProblemType{}

// ColHasRelevantProblemType is the flag column added by RelevantProblemType.
const ColHasRelevantProblemType domain.Column = "Has Relevant Problem Type"

// RelevantProblemPhrases are matched against the product problem string.
// "program or algorithm execution" covers both the failure and the problem
// categories. "Application Program Problem" is named in the criterion text
// but is not matched on its own.
var RelevantProblemPhrases = []string{
	"inadequate or imprecise result or readings",
	"program or algorithm execution",
	"patient data problem",
}

// ProblemTypeMode selects whether the problem type stage removes rows.
type ProblemTypeMode string

const (
	// FlagOnly adds the flag column and keeps every row, so both groups
	// stay visible in the report.
	FlagOnly ProblemTypeMode = "flag"

	// FlagAndFilter adds the flag column and drops rows without it.
	FlagAndFilter ProblemTypeMode = "filter"
)

// ParseProblemTypeMode parses a mode name. The empty string is FlagOnly.
func ParseProblemTypeMode(s string) (ProblemTypeMode, error) {
	switch ProblemTypeMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FlagOnly:
		return FlagOnly, nil
	case FlagAndFilter:
		return FlagAndFilter, nil
	default:
		return "", fmt.Errorf("%w: problem type mode %q", domain.ErrInvalidInput, s)
	}
}

// RelevantProblemType flags reports whose product problems mention one of
// RelevantProblemPhrases.
type RelevantProblemType struct {
	Mode ProblemTypeMode
}

// Name returns the stage name.
func (RelevantProblemType) Name() string { return "relevant_problem_type" }

// Apply adds ColHasRelevantProblemType and, in FlagAndFilter mode, keeps
// only flagged rows.
func (s RelevantProblemType) Apply(table domain.Table) domain.Table {
	flagged := table.WithFlag(ColHasRelevantProblemType, HasRelevantProblemType)
	if s.Mode == FlagAndFilter {
		return flagged.FilterFlag(ColHasRelevantProblemType)
	}
	return flagged
}

// Describe states the resulting row count and, when rows were kept, how
// many of them carry a relevant problem type.
func (s RelevantProblemType) Describe(result domain.Table) string {
	phrases := "'Inadequate or Imprecise Result or Readings'," +
		"'Program or Algorithm Execution Failure'," +
		"'Program or Algorithm Execution Problem'," +
		"'Patient Data Problem'," +
		"'Application Program Problem'"

	if s.Mode == FlagAndFilter {
		return fmt.Sprintf("There were <b>%d</b> adverse events that had a "+
			"product problem that mentioned one of the following "+
			"phrases that are included in category names: %s. "+
			"See the field product_problems in the API %s", result.Len(), phrases, fieldSpecLink)
	}
	return fmt.Sprintf("There were <b>%d</b> adverse events, of which <b>%d</b> had a "+
		"product problem that mentioned one of the following "+
		"phrases that are included in category names: %s. "+
		"Both groups are listed; see the '%s' column of the spreadsheet. "+
		"See the field product_problems in the API %s",
		result.Len(), result.CountFlag(ColHasRelevantProblemType), phrases,
		ColHasRelevantProblemType, fieldSpecLink)
}

// HasRelevantProblemType reports whether a row's product problems contain
// any relevant phrase, ignoring case.
func HasRelevantProblemType(row domain.Row) bool {
	problems := strings.ToLower(row.ProductProblems)
	for _, phrase := range RelevantProblemPhrases {
		if strings.Contains(problems, phrase) {
			return true
		}
	}
	return false
}
