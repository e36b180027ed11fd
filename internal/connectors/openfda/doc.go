// Package openfda talks to the openFDA device adverse event endpoint.
//
// It builds the query URL for each search theme, fetches and decodes one
// page per call, and paces successive page requests. Pagination itself is
// driven by the core pipeline; this package never loops over pages.
//
// # Query shape
//
//	https://api.fda.gov/device/event.json?search=<expr>&limit=500[&skip=N]
//
// The skip term is omitted on the first page. A '*' suffix asks the API
// for a case-insensitive wildcard match.
package openfda
