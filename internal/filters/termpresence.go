package filters

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure TermPresence implements the interface.
var _ driven.FilterStage = TermPresence{}

// DefaultPresenceTerm is the phrase flagged by NewTermPresence.
const DefaultPresenceTerm = "machine learning"

// ColMentionsMachineLearning is the flag column added by NewTermPresence.
const ColMentionsMachineLearning domain.Column = "Mentions Machine Learning"

// TermPresence flags reports whose event or manufacturer comments contain
// Term. It never removes rows.
type TermPresence struct {
	// Term is matched case-insensitively.
	Term string

	// Column names the flag column.
	Column domain.Column
}

// NewTermPresence returns the default stage flagging "machine learning".
func NewTermPresence() TermPresence {
	return TermPresence{Term: DefaultPresenceTerm, Column: ColMentionsMachineLearning}
}

// PresenceColumn returns the flag column name for term, e.g.
// "machine learning" becomes "Mentions Machine Learning".
func PresenceColumn(term string) domain.Column {
	title := cases.Title(language.English).String(strings.TrimSpace(term))
	return domain.Column("Mentions " + title)
}

// Name returns the stage name.
func (TermPresence) Name() string { return "term_presence" }

// Apply adds the flag column.
func (s TermPresence) Apply(table domain.Table) domain.Table {
	return table.WithFlag(s.Column, s.Matches)
}

// Describe states how many reports mention the term.
func (s TermPresence) Describe(result domain.Table) string {
	return fmt.Sprintf("There were <b>%d</b> adverse events, of which <b>%d</b> mention "+
		"'%s' in the event description or the manufacturer narrative "+
		"(see the '%s' column of the spreadsheet).",
		result.Len(), result.CountFlag(s.Column), s.Term, s.Column)
}

// Matches reports whether either comment field contains the term.
func (s TermPresence) Matches(row domain.Row) bool {
	term := strings.ToLower(s.Term)
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(row.EventMainComments), term) ||
		strings.Contains(strings.ToLower(row.EventManufacturerComments), term)
}
