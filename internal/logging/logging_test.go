package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "finpath.log")

	closer, err := Setup(Options{File: path, Level: "debug"})
	require.NoError(t, err)

	log.Debug().Str("list", "goals").Msg("task added")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"task added"`)
	assert.Contains(t, string(data), `"list":"goals"`)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetup_DefaultsToInfoAndDiscard(t *testing.T) {
	closer, err := Setup(Options{Level: "nonsense"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.False(t, log.Debug().Enabled())
}
