// Package record defines the catalog entry model used by shelf.
//
// A [Record] is a plain value holding the title, genre, creator and year of a
// single book, film or other work. Records are built from free-text form
// fields with [Input.Parse], which performs the add-time validation, or
// directly with [New] when the values are already known to be valid.
//
// [Key] selects the field used to order records, and maps each field to a
// typed comparator (case-insensitive for text fields, numeric for the year).
package record
