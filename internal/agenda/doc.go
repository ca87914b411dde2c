// Package agenda extracts ordered folder links from the shared agenda
// document.
//
// The document is fetched through the Drive export endpoint as HTML, the
// shape the original agenda lives in, and scanned either whole or within a
// single selected table. Extraction preserves encounter order exactly and
// never deduplicates, since play order is derived from link order downstream.
package agenda
