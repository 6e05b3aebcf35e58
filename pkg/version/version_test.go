package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/shelf/pkg/version"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, version.GetVersion())
	assert.NotEmpty(t, version.Revision)

	old := version.Version
	t.Cleanup(func() { version.Version = old })

	version.Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", version.GetVersion())
}
