package uitest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/shelf/pkg/uitest"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"plain": {
			input: "hello",
			want:  "hello",
		},
		"colored": {
			input: "\x1b[38;5;212mhello\x1b[0m world",
			want:  "hello world",
		},
		"empty": {},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, uitest.PlainText(tc.input))
		})
	}
}
