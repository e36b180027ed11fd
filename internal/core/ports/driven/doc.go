// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - QueryBuilder: Builds the query URL for a theme and offset
//   - Fetcher: Performs one openFDA page request and decodes it
//   - Pacer: Spaces page requests with the courtesy delay
//   - RecordNormaliser: Maps raw JSON records to fixed-column rows
//   - FilterStage: One row filter applied to a finished table
//
// # Optional Interfaces
//
//   - ReportWriter: Renders a finished report (HTML, spreadsheet, archive).
//     An investigation with no writers still returns its reports.
//   - RunArchive: Records runs and their reports in a database
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
