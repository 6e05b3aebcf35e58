package record

import (
	"fmt"
)

// Record is a single catalog entry.
type Record struct {
	Title   string `json:"title"   jsonschema:"title=Title"`
	Genre   string `json:"genre"   jsonschema:"title=Genre"`
	Creator string `json:"creator" jsonschema:"title=Creator"`
	Year    int    `json:"year"    jsonschema:"title=Year"`
}

// New creates a [Record]. It does not validate its arguments, see [Input.Parse].
func New(title, genre, creator string, year int) Record {
	return Record{
		Title:   title,
		Genre:   genre,
		Creator: creator,
		Year:    year,
	}
}

// String returns the canonical representation of the record, which is used
// both for display and for saved files.
func (r Record) String() string {
	return fmt.Sprintf("%s (%d) by %s - %s", r.Title, r.Year, r.Creator, r.Genre)
}
