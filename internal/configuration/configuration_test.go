package configuration_test

import (
	"log/slog"
	"testing"

	"github.com/desertwitch/fsproxy/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	envMap map[string]string
	err    error
}

func (r *fakeReader) Read(_ ...string) (map[string]string, error) {
	return r.envMap, r.err
}

func TestReadGeneric(t *testing.T) {
	t.Parallel()

	provider := configuration.NewProvider(&fakeReader{
		envMap: map[string]string{configuration.KeyLogLevel: "debug"},
	})

	envMap, err := provider.ReadGeneric(".env")
	require.NoError(t, err)
	assert.Equal(t, "debug", provider.MapKeyToString(envMap, configuration.KeyLogLevel))
	assert.Empty(t, provider.MapKeyToString(envMap, "MISSING"))
}

func TestMapKeyToBool(t *testing.T) {
	t.Parallel()

	provider := configuration.NewProvider(&fakeReader{})

	envMap := map[string]string{
		"A": "1",
		"B": "TRUE",
		"C": "yes",
		"D": "off",
		"E": "nonsense",
	}

	assert.True(t, provider.MapKeyToBool(envMap, "A"))
	assert.True(t, provider.MapKeyToBool(envMap, "B"))
	assert.True(t, provider.MapKeyToBool(envMap, "C"))
	assert.False(t, provider.MapKeyToBool(envMap, "D"))
	assert.False(t, provider.MapKeyToBool(envMap, "E"))
	assert.False(t, provider.MapKeyToBool(envMap, "MISSING"))
}

func TestMapKeyToLogLevel(t *testing.T) {
	t.Parallel()

	provider := configuration.NewProvider(&fakeReader{})

	envMap := map[string]string{
		"A": "debug",
		"B": "WARN",
		"C": "error",
		"D": "verbose",
	}

	assert.Equal(t, slog.LevelDebug, provider.MapKeyToLogLevel(envMap, "A"))
	assert.Equal(t, slog.LevelWarn, provider.MapKeyToLogLevel(envMap, "B"))
	assert.Equal(t, slog.LevelError, provider.MapKeyToLogLevel(envMap, "C"))
	assert.Equal(t, slog.LevelInfo, provider.MapKeyToLogLevel(envMap, "D"))
	assert.Equal(t, slog.LevelInfo, provider.MapKeyToLogLevel(envMap, "MISSING"))
}
