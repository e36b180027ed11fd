package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/maude-cli/internal/adapters/driving/styles"
	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

// printSummary writes the end-of-run overview: where the files are and how
// many reports each theme kept.
func printSummary(w io.Writer, dir string, reports []*domain.Report, runErr error) {
	s := styles.DefaultStyles()

	var b strings.Builder
	b.WriteString(s.Title.Render("Investigation summary"))
	b.WriteString("\n")
	b.WriteString(s.Field("Output", dir))
	b.WriteString("\n")

	for _, r := range reports {
		sum := r.Summary()
		b.WriteString("\n")
		b.WriteString(s.Label.Render(fmt.Sprintf("[%s] %s", sum.Theme.LabelPrefix(), sum.Theme.Name())))
		b.WriteString("\n  ")
		b.WriteString(s.Field("reported", strconv.Itoa(sum.ReportedTotal)))
		b.WriteString("  ")
		b.WriteString(s.Field("fetched", strconv.Itoa(sum.RowsFetched)))
		b.WriteString("  ")
		b.WriteString(s.Field("in report", strconv.Itoa(sum.RowsReported)))
		if sum.ReportedTotal > domain.MaxResults {
			b.WriteString("  ")
			b.WriteString(s.Muted.Render(fmt.Sprintf("(limited to %d)", domain.MaxResults)))
		}
		if sum.Truncated {
			b.WriteString("\n  ")
			b.WriteString(s.Warning.Render("a truncated response stopped paging early; results are partial"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if runErr != nil {
		b.WriteString(s.Error.Render("Run failed: " + runErr.Error()))
	} else {
		b.WriteString(s.Success.Render(fmt.Sprintf("Completed %d theme(s)", len(reports))))
	}

	fmt.Fprintln(w, s.Box.Render(b.String()))
}
