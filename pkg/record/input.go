package record

import (
	"strconv"
	"strings"
)

// Input holds the raw text of the four form fields.
type Input struct {
	Title   string `json:"title"`
	Genre   string `json:"genre"`
	Creator string `json:"creator"`
	Year    string `json:"year"`
}

// Parse validates the input and converts it into a [Record].
//
// Any empty field results in a [*MissingFieldError]. A year that does not
// parse as an integer results in an [*InvalidYearError]. No other checks are
// made: the year is not bounded and the genre is free text.
func (in Input) Parse() (Record, error) {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{KeyTitle.String(), in.Title},
		{KeyGenre.String(), in.Genre},
		{KeyCreator.String(), in.Creator},
		{KeyYear.String(), in.Year},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return Record{}, &MissingFieldError{Fields: missing}
	}

	year, err := strconv.Atoi(strings.TrimSpace(in.Year))
	if err != nil {
		return Record{}, &InvalidYearError{Value: in.Year, Err: err}
	}

	return New(in.Title, in.Genre, in.Creator, year), nil
}
