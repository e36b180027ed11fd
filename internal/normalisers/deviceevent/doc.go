// Package deviceevent normalises openFDA device adverse event records.
//
// Records are heterogeneous: fields may be missing, empty or of an
// unexpected type. The normaliser never fails on such input; it stores
// domain.Unknown for anything it cannot read. Field names follow
// https://open.fda.gov/apis/device/event/searchable-fields/.
package deviceevent
