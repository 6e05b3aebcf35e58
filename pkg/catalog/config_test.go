package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/shelf/pkg/catalog"
	"github.com/macropower/shelf/pkg/record"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	c := &catalog.Config{}
	c.EnsureDefaults()

	assert.Equal(t, "title", c.DefaultSort)
	assert.Equal(t, "shelf.txt", c.SavePath)
	require.NoError(t, c.Validate())
	assert.Equal(t, []record.Order{{Key: record.KeyTitle}}, c.Orders())

	c.DefaultSort = "year-,title"
	require.NoError(t, c.Validate())
	assert.Equal(t, []record.Order{
		{Key: record.KeyYear, Descending: true},
		{Key: record.KeyTitle},
	}, c.Orders())

	c.DefaultSort = "isbn"
	require.ErrorIs(t, c.Validate(), record.ErrUnknownKey)
	assert.Equal(t, []record.Order{{Key: record.KeyTitle}}, c.Orders())
}
