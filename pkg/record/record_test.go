package record_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/shelf/pkg/record"
)

func TestRecord_String(t *testing.T) {
	t.Parallel()

	r := record.New("Dune", "Sci-Fi", "Herbert", 1965)

	assert.Equal(t, "Dune (1965) by Herbert - Sci-Fi", r.String())
}

func TestInput_Parse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   record.Input
		want    record.Record
		wantErr error
		missing []string
	}{
		"valid": {
			input: record.Input{Title: "Emma", Genre: "Romance", Creator: "Austen", Year: "1815"},
			want:  record.New("Emma", "Romance", "Austen", 1815),
		},
		"year with surrounding spaces": {
			input: record.Input{Title: "Emma", Genre: "Romance", Creator: "Austen", Year: " 1815 "},
			want:  record.New("Emma", "Romance", "Austen", 1815),
		},
		"negative year": {
			input: record.Input{Title: "Iliad", Genre: "Epic", Creator: "Homer", Year: "-750"},
			want:  record.New("Iliad", "Epic", "Homer", -750),
		},
		"missing title": {
			input:   record.Input{Genre: "Romance", Creator: "Austen", Year: "1815"},
			wantErr: record.ErrMissingField,
			missing: []string{"title"},
		},
		"all missing": {
			input:   record.Input{},
			wantErr: record.ErrMissingField,
			missing: []string{"title", "genre", "creator", "year"},
		},
		"year not a number": {
			input:   record.Input{Title: "1984", Genre: "Dystopian", Creator: "Orwell", Year: "nineteen"},
			wantErr: record.ErrInvalidYear,
		},
		"year is a float": {
			input:   record.Input{Title: "1984", Genre: "Dystopian", Creator: "Orwell", Year: "1949.0"},
			wantErr: record.ErrInvalidYear,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.input.Parse()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, record.Record{}, got)

				if tc.missing != nil {
					var mfe *record.MissingFieldError
					require.ErrorAs(t, err, &mfe)
					assert.Equal(t, tc.missing, mfe.Fields)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInvalidYearError_Unwrap(t *testing.T) {
	t.Parallel()

	_, err := record.Input{Title: "a", Genre: "b", Creator: "c", Year: "x"}.Parse()

	var iye *record.InvalidYearError
	require.ErrorAs(t, err, &iye)
	assert.Equal(t, "x", iye.Value)
	require.ErrorIs(t, err, strconv.ErrSyntax)
}
