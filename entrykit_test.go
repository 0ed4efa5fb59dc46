package entrykit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPath(t *testing.T) {
	entry := FromPath("/var/data/file.bin")
	assert.Equal(t, "/var/data/file.bin", entry.Path)

	// Total: any string is accepted unchanged.
	assert.Equal(t, "", FromPath("").Path)
	assert.Equal(t, "relative/../odd", FromPath("relative/../odd").Path)
}

func TestParseDispatch(t *testing.T) {
	setAWSEnv(t)

	t.Run("s3", func(t *testing.T) {
		entry, err := Parse("s3://bucket/key")
		require.NoError(t, err)
		require.IsType(t, &S3Entry{}, entry)
	})

	t.Run("http", func(t *testing.T) {
		entry, err := Parse("http://example.com/file")
		require.NoError(t, err)
		require.IsType(t, &HTTPEntry{}, entry)
		assert.Equal(t, "http://example.com/file", entry.(*HTTPEntry).URL)
	})

	t.Run("https", func(t *testing.T) {
		entry, err := Parse("https://example.com/file")
		require.NoError(t, err)
		require.IsType(t, &HTTPEntry{}, entry)
	})

	t.Run("file scheme", func(t *testing.T) {
		entry, err := Parse("file:///var/data/file.bin")
		require.NoError(t, err)
		require.IsType(t, &LocalEntry{}, entry)
		assert.Equal(t, "/var/data/file.bin", entry.(*LocalEntry).Path)
	})

	t.Run("schemeless is local", func(t *testing.T) {
		entry, err := Parse("/var/data/file.bin")
		require.NoError(t, err)
		require.IsType(t, &LocalEntry{}, entry)
		assert.Equal(t, "/var/data/file.bin", entry.(*LocalEntry).Path)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := Parse("gs://bucket/key")
		var uriErr *InvalidURIError
		require.ErrorAs(t, err, &uriErr)
		assert.Contains(t, err.Error(), "gs://bucket/key")
	})

	t.Run("options pass through to the matching backend", func(t *testing.T) {
		entry, err := Parse("s3://bucket/key",
			WithConfigMap(map[string]any{"region": "sa-east-1"}),
			WithHTTPConfigMap(map[string]any{"headers": []any{}}))
		require.NoError(t, err)

		s3, ok := entry.(*S3Entry)
		require.True(t, ok)
		assert.Equal(t, "sa-east-1", s3.Config.Region)
	})
}
