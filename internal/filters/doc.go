// Package filters provides the row filters applied to a finished result
// table. Each filter is a driven.FilterStage; stages are chained in the
// order a report lists its filtering criteria.
//
// Filters are pure: they return a new table and never modify their input.
package filters

// fieldSpecURL documents the searchable fields referenced in criteria.
const fieldSpecURL = "https://open.fda.gov/apis/device/event/searchable-fields/"

const fieldSpecLink = `<a href="` + fieldSpecURL + `" target="blank">field specification</a>`
