package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	cssContent := strings.Repeat("body { margin: 0; padding: 0; }\n", 64)
	require.NoError(t, os.WriteFile(filepath.Join(root, "style.css"), []byte(cssContent), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "photo.jpg"), []byte("jpeg-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tiny.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "config.txt"), []byte(strings.Repeat("x", 4096)), 0o644))

	require.NoError(t, run(root, false, 1024, discardLogger()))

	t.Run("gzip_sibling_roundtrips", func(t *testing.T) {
		t.Parallel()

		f, err := os.Open(filepath.Join(root, "style.css.gz"))
		require.NoError(t, err)
		defer f.Close()

		zr, err := gzip.NewReader(f)
		require.NoError(t, err)
		decompressed, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, cssContent, string(decompressed))
	})

	t.Run("brotli_sibling_roundtrips", func(t *testing.T) {
		t.Parallel()

		f, err := os.Open(filepath.Join(root, "style.css.br"))
		require.NoError(t, err)
		defer f.Close()

		decompressed, err := io.ReadAll(brotli.NewReader(f))
		require.NoError(t, err)
		assert.Equal(t, cssContent, string(decompressed))
	})

	t.Run("skips_precompressed_media", func(t *testing.T) {
		t.Parallel()

		assert.NoFileExists(t, filepath.Join(root, "photo.jpg.gz"))
		assert.NoFileExists(t, filepath.Join(root, "photo.jpg.br"))
	})

	t.Run("skips_small_files", func(t *testing.T) {
		t.Parallel()

		assert.NoFileExists(t, filepath.Join(root, "tiny.txt.gz"))
	})

	t.Run("skips_hidden_directories", func(t *testing.T) {
		t.Parallel()

		assert.NoFileExists(t, filepath.Join(root, ".git", "config.txt.gz"))
	})
}

func TestRunSkipsUpToDateSiblings(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	content := strings.Repeat("<li>item</li>\n", 128)
	src := filepath.Join(root, "list.html")
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))

	require.NoError(t, run(root, false, 1024, discardLogger()))

	// A second pass leaves the existing siblings alone.
	info, err := os.Stat(src + ".gz")
	require.NoError(t, err)
	require.NoError(t, run(root, false, 1024, discardLogger()))
	again, err := os.Stat(src + ".gz")
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), again.ModTime())

	// Force rewrites regardless.
	require.NoError(t, run(root, true, 1024, discardLogger()))
	forced, err := os.Stat(src + ".gz")
	require.NoError(t, err)
	assert.False(t, forced.ModTime().Before(info.ModTime()))
}
