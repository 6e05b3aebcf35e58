// Package catalog holds the records entered during a shelf session.
//
// A [Catalog] keeps records in insertion order. Sorting produces an
// independent, ordered snapshot for display and never reorders the catalog
// itself, so saving always writes records in the order they were added.
package catalog
