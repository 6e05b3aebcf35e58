package log_test

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/shelf/pkg/log"
)

func TestNewBuffer(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		limit int
		want  int
	}{
		"positive": {limit: 10, want: 10},
		"zero":     {limit: 0, want: 100},
		"negative": {limit: -5, want: 100},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := log.NewBuffer(tc.limit)
			assert.Equal(t, tc.want, b.Limit())
			assert.Equal(t, 0, b.Len())
		})
	}
}

func TestBuffer_Write(t *testing.T) {
	t.Parallel()

	b := log.NewBuffer(3)

	n, err := b.Write([]byte{})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, b.Len())

	for i := range 5 {
		_, err := fmt.Fprintf(b, "entry%d\n", i)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 2, b.Dropped())

	var out bytes.Buffer

	written, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "entry2\nentry3\nentry4\n", out.String())
	assert.Equal(t, int64(out.Len()), written)

	// Flushing empties the buffer.
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Dropped())
}

func TestBuffer_WriteCopiesData(t *testing.T) {
	t.Parallel()

	b := log.NewBuffer(2)

	p := []byte("original")
	_, err := b.Write(p)
	require.NoError(t, err)

	copy(p, "modified")

	var out bytes.Buffer

	_, err = b.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "original", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestBuffer_WriteToError(t *testing.T) {
	t.Parallel()

	b := log.NewBuffer(2)
	_, err := b.Write([]byte("entry"))
	require.NoError(t, err)

	_, err = b.WriteTo(failingWriter{})
	require.Error(t, err)
}

func TestBuffer_Concurrent(t *testing.T) {
	t.Parallel()

	b := log.NewBuffer(50)

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			for range 20 {
				_, err := b.Write([]byte("x"))
				assert.NoError(t, err)
			}
		})
	}

	wg.Wait()

	assert.Equal(t, 50, b.Len())
	assert.Equal(t, 150, b.Dropped())
}
