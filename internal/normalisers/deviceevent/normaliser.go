package deviceevent

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
	"github.com/custodia-labs/maude-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.RecordNormaliser = (*Normaliser)(nil)

// mdr_text type codes that feed the two comment columns.
const (
	TextTypeEventDescription      = "Description of Event or Problem"
	TextTypeManufacturerNarrative = "Additional Manufacturer Narrative"
)

const (
	problemSeparator = "|"
	commentSeparator = "."
)

// Normaliser maps device event records to rows.
type Normaliser struct{}

// New creates a new device event normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// NormaliseBatch normalises every record of a page, in page order.
func (n *Normaliser) NormaliseBatch(page *driven.Page) []domain.Row {
	if page == nil {
		return nil
	}
	rows := make([]domain.Row, 0, len(page.Results))
	for _, record := range page.Results {
		rows = append(rows, n.Normalise(page.URL, record))
	}
	return rows
}

// Normalise maps one record to a row. Every field of the returned row is
// populated, with domain.Unknown standing in for missing data.
func (n *Normaliser) Normalise(sourceURL string, record driven.RawRecord) domain.Row {
	row := domain.NewRow()
	row.SourceURL = sourceURL

	row.ReportID = scalar(record, "report_number")
	row.BaseReportID = domain.BaseReportID(row.ReportID)
	row.EventDate = scalar(record, "date_of_event")
	row.AdverseEventFlag = scalar(record, "adverse_event_flag")
	row.ReportSourceCode = scalar(record, "report_source_code")

	setDeviceFields(record, &row)

	row.ProductProblems = joinProblems(record["product_problems"])
	if patient, ok := firstObject(record["patient"]); ok {
		row.PatientProblems = joinProblems(patient["patient_problems"])
	}

	row.EventMainComments, row.EventManufacturerComments = comments(record["mdr_text"])

	return row
}

// setDeviceFields reads the first entry of the device list and its openfda
// sub-object. A missing level leaves every field beneath it Unknown.
func setDeviceFields(record driven.RawRecord, row *domain.Row) {
	device, ok := firstObject(record["device"])
	if !ok {
		return
	}

	row.DeviceExpirationDate = scalar(device, "expiration_date_of_device")
	row.DeviceModelNumber = scalar(device, "model_number")
	row.DeviceCatalogueNumber = scalar(device, "catalog_number")
	row.DeviceLotNumber = scalar(device, "lot_number")

	ofda, ok := device["openfda"].(map[string]any)
	if !ok {
		return
	}

	row.DeviceRegNumber = registrationNumber(ofda["registration_number"])
	row.DeviceName = scalar(ofda, "device_name")
	row.DeviceSpecialtyArea = scalar(ofda, "medical_specialty_description")
	row.DeviceClass = scalar(ofda, "device_class")
}

// scalar returns the lower-cased string stored under key, or Unknown when
// the key is absent, empty or not a string.
func scalar(obj map[string]any, key string) string {
	s, ok := obj[key].(string)
	if !ok || s == "" {
		return domain.Unknown
	}
	return lower(s)
}

// registrationNumber returns the first registration number verbatim.
// openFDA sends a list; a bare string is accepted too.
func registrationNumber(v any) string {
	switch rn := v.(type) {
	case string:
		if rn != "" {
			return rn
		}
	case []any:
		if len(rn) > 0 {
			if s, ok := rn[0].(string); ok && s != "" {
				return s
			}
		}
	}
	return domain.Unknown
}

// joinProblems sorts a problem list, joins it with '|' and lower-cases it.
// An absent or empty list is Unknown.
func joinProblems(v any) string {
	problems := stringList(v)
	if len(problems) == 0 {
		return domain.Unknown
	}
	sort.Strings(problems)
	return lower(strings.Join(problems, problemSeparator))
}

// comments partitions mdr_text entries into the event description and the
// manufacturer narrative. Without an mdr_text list both are Unknown; with
// one, a bucket that matched nothing is the empty string.
func comments(v any) (main, manufacturer string) {
	entries, ok := v.([]any)
	if !ok {
		return domain.Unknown, domain.Unknown
	}

	var mainTexts, manufacturerTexts []string
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		text, ok := entry["text"].(string)
		if !ok {
			continue
		}
		switch entry["text_type_code"] {
		case TextTypeEventDescription:
			mainTexts = append(mainTexts, text)
		case TextTypeManufacturerNarrative:
			manufacturerTexts = append(manufacturerTexts, text)
		}
	}

	return joinComments(mainTexts), joinComments(manufacturerTexts)
}

func joinComments(texts []string) string {
	sort.Strings(texts)
	return lower(strings.Join(texts, commentSeparator))
}

// firstObject returns the first element of a JSON array when it is an object.
func firstObject(v any) (map[string]any, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	obj, ok := list[0].(map[string]any)
	return obj, ok
}

// stringList collects the string elements of a JSON array.
func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
