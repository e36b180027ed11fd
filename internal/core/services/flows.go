package services

import (
	"fmt"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

// Filter stage names used by the investigation flows. They match the names
// the filters registry registers its built-in stages under.
const (
	StageSuspectDevice       = "suspect_device"
	StageRelevantProblemType = "relevant_problem_type"
	StageTermPresence        = "term_presence"
)

const fdaDevicesLink = `<a href="https://www.fda.gov/medical-devices/software-medical-device-samd/` +
	`artificial-intelligence-and-machine-learning-aiml-enabled-medical-devices" target="blank">authorised</a>`

const descriptionIntro = `<p>As of August 7, 2024, the FDA has ` + fdaDevicesLink +
	` 950 AI/ML-Enabled devices. This is an investigation into the patterns of reported ` +
	`adverse events where a device is at least suspected to have resulted in the ` +
	`adverse outcome of a patient.</p>` +
	`<p>The investigation examines adverse events that have been recorded through the ` +
	`<a href="https://open.fda.gov/apis/">Open FDA</a>'s ` +
	`<a href="https://open.fda.gov/apis/device/">Medical Device API Endpoints</a> facility.</p>`

const algorithmRationale = ` The term "algorithm" is used because searches for ` +
	`"machine learning" and "artificial intelligence" return few results.</p>`

// flow is the fixed narrative and filter sequence of one theme's report.
type flow struct {
	title       string
	description string
	stages      []string

	// announce is logged when the theme starts.
	announce string

	// opening describes the unfiltered result set. atLeast is true when the
	// server reported more results than were retrieved.
	opening func(count int, atLeast bool) string
}

var flows = map[domain.Theme]flow{
	domain.ThemeArtificialIntelligence: {
		title: "Occurrences of Medical Device AEs that Mention Machine Learning",
		description: descriptionIntro +
			`<p>This inquiry is a search for the adverse events associated with a medical ` +
			`device where the record has some mention of machine learning or artificial intelligence.</p>`,
		stages:   []string{StageSuspectDevice, StageTermPresence},
		announce: "Investigating medical device reports that contain the phrase 'artificial intelligence' or 'machine learning'",
		opening: func(count int, atLeast bool) string {
			return fmt.Sprintf("There were %s<b>%d</b> adverse events which mentioned either "+
				"the term 'artificial intelligence' or 'machine learning'. The terms ' AI ' and "+
				"' ML ' were left out of the search because they are ambiguous abbreviations. "+
				"For example, 'ai' can stand for analog interface and 'ml' can stand for millilitre.",
				atLeastPrefix(atLeast), count)
		},
	},
	domain.ThemeAlgorithm: {
		title: "Occurrences of Medical Device AEs that Mention Algorithm with Relevant Problem Type",
		description: descriptionIntro +
			`<p>This inquiry is a search for the adverse events associated with a medical ` +
			`device where the record has some mention of the term "algorithm".` + algorithmRationale,
		stages:   []string{StageSuspectDevice, StageRelevantProblemType},
		announce: "Investigating medical device reports that contain the phrase 'algorithm'",
		opening: func(count int, atLeast bool) string {
			return fmt.Sprintf(`There were %s<b>%d</b> adverse events that mentioned the term "algorithm".`,
				atLeastPrefix(atLeast), count)
		},
	},
	domain.ThemeDiagnosticAlgorithm: {
		title: "Occurrences of Medical Device AEs that Mention Diagnostic Algorithms with Relevant Problem Type",
		description: descriptionIntro +
			`<p>This inquiry is a search for the adverse events associated with a medical ` +
			`device where the record mentions the term "algorithm" and then either ` +
			`"diagnostic" or "diagnosis".` + algorithmRationale,
		stages:   []string{StageSuspectDevice, StageRelevantProblemType},
		announce: "Investigating medical device reports that contain 'algorithm' and either 'diagnostic' or 'diagnosis'",
		opening: func(count int, atLeast bool) string {
			return fmt.Sprintf(`There were %s<b>%d</b> adverse events that mentioned the term `+
				`"algorithm" and then either "diagnostic" or "diagnosis".`,
				atLeastPrefix(atLeast), count)
		},
	},
}

func atLeastPrefix(atLeast bool) string {
	if atLeast {
		return "at least "
	}
	return ""
}

func flowFor(theme domain.Theme) flow {
	f, ok := flows[theme]
	if !ok {
		panic(fmt.Sprintf("services: no investigation flow for theme %s", theme))
	}
	return f
}

// FlowStages returns the filter stage names applied to theme's report, in
// order. Callers build the matching chain from the filters registry.
func FlowStages(theme domain.Theme) []string {
	stages := flowFor(theme).stages
	out := make([]string, len(stages))
	copy(out, stages)
	return out
}

// FlowTitle returns the report title for theme.
func FlowTitle(theme domain.Theme) string {
	return flowFor(theme).title
}
