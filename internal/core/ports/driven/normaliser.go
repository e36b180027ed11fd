package driven

import "github.com/custodia-labs/maude-cli/internal/core/domain"

// RecordNormaliser turns raw records into rows with every column set.
// Absent or malformed optional fields become domain.Unknown; normalisation
// never fails.
type RecordNormaliser interface {
	// Normalise maps one record fetched from sourceURL to a row.
	Normalise(sourceURL string, record RawRecord) domain.Row

	// NormaliseBatch maps every record of a page, preserving order.
	NormaliseBatch(page *Page) []domain.Row
}
