package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	small := font.MeasureString(Regular.Get(), "level_0")
	large := font.MeasureString(Banner.Get(), "level_0")
	assert.Greater(t, large, small)
}

func TestLoadFontWithSize_Invalid(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
}

func TestGet_Unknown(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
