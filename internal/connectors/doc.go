// Package connectors holds the clients for remote data sources. Each
// connector fetches raw pages from one API and leaves normalisation to
// the normalisers packages.
package connectors
