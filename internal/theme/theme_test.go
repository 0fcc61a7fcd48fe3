package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOrderAndNames(t *testing.T) {
	themes := Catalog()
	require.Len(t, themes, 6)

	names := make([]string, len(themes))
	for i, th := range themes {
		names[i] = th.Name
		assert.Equal(t, IDs[i], th.ID)
	}
	assert.Equal(t, []string{
		"Ocean Blue", "Rose Garden", "Forest Night",
		"Sunset Fire", "Purple Dream", "Cyber Teal",
	}, names)
}

func TestIsValid(t *testing.T) {
	for _, id := range IDs {
		assert.True(t, IsValid(id), id)
	}
	assert.False(t, IsValid("theme7"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Ocean Blue"))
}

func TestResolveFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Rose Garden", Resolve("theme2").Name)

	fallback := Resolve("no-such-theme")
	assert.Equal(t, Default, fallback.ID)
	assert.Equal(t, "Ocean Blue", fallback.Name)
}
