// Package normalisers holds the record normalisers. Each normaliser maps
// the raw records of one API into domain rows with a fixed column set.
package normalisers
