package fsproxy_test

import (
	"testing"

	"github.com/desertwitch/fsproxy/internal/fsproxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintInsertionOrderIrrelevant(t *testing.T) {
	t.Parallel()

	first := fsproxy.NewMemoryFS()
	require.NoError(t, first.MkdirAll("/a"))
	require.NoError(t, first.WriteFile("/a/one.txt", []byte("1")))
	require.NoError(t, first.WriteFile("/a/two.txt", []byte("2")))

	second := fsproxy.NewMemoryFS()
	require.NoError(t, second.MkdirAll("/a"))
	require.NoError(t, second.WriteFile("/a/two.txt", []byte("2")))
	require.NoError(t, second.WriteFile("/a/one.txt", []byte("1")))

	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
}

func TestFingerprintDetectsDifferences(t *testing.T) {
	t.Parallel()

	base := fsproxy.NewMemoryFS()
	require.NoError(t, base.WriteFile("/a.txt", []byte("same")))

	differentContent := fsproxy.NewMemoryFS()
	require.NoError(t, differentContent.WriteFile("/a.txt", []byte("other")))

	differentName := fsproxy.NewMemoryFS()
	require.NoError(t, differentName.WriteFile("/b.txt", []byte("same")))

	differentType := fsproxy.NewMemoryFS()
	require.NoError(t, differentType.MkdirAll("/a.txt"))

	assert.NotEqual(t, base.Fingerprint(), differentContent.Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), differentName.Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), differentType.Fingerprint())
}

func TestFingerprintEmptyStable(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		fsproxy.NewMemoryFS().Fingerprint(),
		fsproxy.NewMemoryFS().Fingerprint(),
	)
}
