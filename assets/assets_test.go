package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevels(t *testing.T) {
	levels, names, err := LoadLevels()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		level := levels[name]
		require.NotNil(t, level)
		assert.NotEmpty(t, level.Walls, "level %s has no walls", name)
		assert.NotEmpty(t, level.SpawnPoints, "level %s has no spawn", name)
	}
}
