package domain

import "strings"

// Unknown is the sentinel stored in a Row field when the source record
// lacks a value.
const Unknown = "unknown"

// Column names a field of a Result Table.
type Column string

// Row columns in canonical report order.
const (
	ColBaseReportID              Column = "Base Report ID"
	ColReportID                  Column = "Report ID"
	ColSourceURL                 Column = "Source URL"
	ColAdverseEventFlag          Column = "Adverse Event Flag"
	ColEventDate                 Column = "Event Date"
	ColReportSourceCode          Column = "Report Source Code"
	ColDeviceSpecialtyArea       Column = "Device Specialty Area"
	ColDeviceClass               Column = "Device Class"
	ColDeviceRegNumber           Column = "Device Reg Number"
	ColDeviceName                Column = "Device Name"
	ColDeviceModelNumber         Column = "Device Model Number"
	ColDeviceCatalogueNumber     Column = "Device Catalogue Number"
	ColDeviceLotNumber           Column = "Device Lot Number"
	ColDeviceExpirationDate      Column = "Device Expiration Date"
	ColPatientProblems           Column = "Patient Problems"
	ColProductProblems           Column = "Product Problems"
	ColEventMainComments         Column = "Event Main Comments"
	ColEventManufacturerComments Column = "Event Manufacturer Comments"
)

// ColResultLabel is the derived label column, placed first once assigned.
const ColResultLabel Column = "Result Label"

// RowColumns lists the fixed row columns in canonical order.
var RowColumns = []Column{
	ColBaseReportID,
	ColReportID,
	ColSourceURL,
	ColAdverseEventFlag,
	ColEventDate,
	ColReportSourceCode,
	ColDeviceSpecialtyArea,
	ColDeviceClass,
	ColDeviceRegNumber,
	ColDeviceName,
	ColDeviceModelNumber,
	ColDeviceCatalogueNumber,
	ColDeviceLotNumber,
	ColDeviceExpirationDate,
	ColPatientProblems,
	ColProductProblems,
	ColEventMainComments,
	ColEventManufacturerComments,
}

// Row is one normalised adverse event report. Every field is always set;
// absent source data is stored as Unknown. Row is comparable, so two rows
// are duplicates exactly when they are ==.
type Row struct {
	BaseReportID              string
	ReportID                  string
	SourceURL                 string
	AdverseEventFlag          string
	EventDate                 string
	ReportSourceCode          string
	DeviceSpecialtyArea       string
	DeviceClass               string
	DeviceRegNumber           string
	DeviceName                string
	DeviceModelNumber         string
	DeviceCatalogueNumber     string
	DeviceLotNumber           string
	DeviceExpirationDate      string
	PatientProblems           string
	ProductProblems           string
	EventMainComments         string
	EventManufacturerComments string
}

// NewRow returns a row with every field set to Unknown.
func NewRow() Row {
	return Row{
		BaseReportID:              Unknown,
		ReportID:                  Unknown,
		SourceURL:                 Unknown,
		AdverseEventFlag:          Unknown,
		EventDate:                 Unknown,
		ReportSourceCode:          Unknown,
		DeviceSpecialtyArea:       Unknown,
		DeviceClass:               Unknown,
		DeviceRegNumber:           Unknown,
		DeviceName:                Unknown,
		DeviceModelNumber:         Unknown,
		DeviceCatalogueNumber:     Unknown,
		DeviceLotNumber:           Unknown,
		DeviceExpirationDate:      Unknown,
		PatientProblems:           Unknown,
		ProductProblems:           Unknown,
		EventMainComments:         Unknown,
		EventManufacturerComments: Unknown,
	}
}

// Value returns the field stored under the given column.
// It returns "" for columns that are not row fields.
func (r Row) Value(c Column) string {
	switch c {
	case ColBaseReportID:
		return r.BaseReportID
	case ColReportID:
		return r.ReportID
	case ColSourceURL:
		return r.SourceURL
	case ColAdverseEventFlag:
		return r.AdverseEventFlag
	case ColEventDate:
		return r.EventDate
	case ColReportSourceCode:
		return r.ReportSourceCode
	case ColDeviceSpecialtyArea:
		return r.DeviceSpecialtyArea
	case ColDeviceClass:
		return r.DeviceClass
	case ColDeviceRegNumber:
		return r.DeviceRegNumber
	case ColDeviceName:
		return r.DeviceName
	case ColDeviceModelNumber:
		return r.DeviceModelNumber
	case ColDeviceCatalogueNumber:
		return r.DeviceCatalogueNumber
	case ColDeviceLotNumber:
		return r.DeviceLotNumber
	case ColDeviceExpirationDate:
		return r.DeviceExpirationDate
	case ColPatientProblems:
		return r.PatientProblems
	case ColProductProblems:
		return r.ProductProblems
	case ColEventMainComments:
		return r.EventMainComments
	case ColEventManufacturerComments:
		return r.EventManufacturerComments
	default:
		return ""
	}
}

// Values returns the row's fields in RowColumns order.
func (r Row) Values() []string {
	values := make([]string, len(RowColumns))
	for i, c := range RowColumns {
		values[i] = r.Value(c)
	}
	return values
}

// BaseReportID derives the base report number from a report number of the
// form [base]-[year]-[sequence].
func BaseReportID(reportID string) string {
	base, _, _ := strings.Cut(reportID, "-")
	return base
}
