// Package htmlreport renders a finished investigation report as a
// standalone HTML page.
//
// The page is assembled as a golang.org/x/net/html node tree. The report
// description and filtering criteria are trusted fragments and are parsed
// as HTML; every row value is escaped text, except for the highlight
// markers placed around configured terms in the comment fields.
package htmlreport
