package filters

import (
	"fmt"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure SuspectDevice implements the interface.
var _ driven.FilterStage = SuspectDevice{}

// SuspectFlag is the normalised adverse_event_flag value marking a report
// whose device is suspected of contributing to the adverse outcome.
const SuspectFlag = "y"

// SuspectDevice keeps only reports flagged as adverse events.
type SuspectDevice struct{}

// Name returns the stage name.
func (SuspectDevice) Name() string { return "suspect_device" }

// Apply keeps rows whose adverse event flag is SuspectFlag.
func (SuspectDevice) Apply(table domain.Table) domain.Table {
	return table.Filter(IsSuspect)
}

// Describe states how many reports remain.
func (SuspectDevice) Describe(result domain.Table) string {
	return fmt.Sprintf("There were <b>%d</b> adverse events that described "+
		"incidents where the use of the device is suspected to have "+
		"resulted in an adverse outcome in a patient. (see "+
		"'adverse_event_flag'='y' in the API %s)", result.Len(), fieldSpecLink)
}

// IsSuspect reports whether a row is flagged as an adverse event.
func IsSuspect(row domain.Row) bool {
	return row.AdverseEventFlag == SuspectFlag
}
