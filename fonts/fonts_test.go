package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	require.NoError(t, LoadFontWithSize(Title, goregular.TTF, 42))

	face := Title.Get()
	require.NotNil(t, face)
	assert.Greater(t, face.Metrics().Height.Ceil(), 0)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize(FontName("broken"), []byte("not a font"), 12)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestGetMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
