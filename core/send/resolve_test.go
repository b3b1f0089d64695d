package send

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendkit/core/response"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	root := filepath.Join(tmp, "fixtures")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "test.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "index.html"), []byte("<p>docs</p>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "secret.txt"), []byte("top"), 0o644))

	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)

	tests := []struct {
		name        string
		requestPath string
		index       string
		wantPath    string
		wantErr     error
	}{
		{
			name:        "plain_file",
			requestPath: "/test.json",
			wantPath:    filepath.Join(absRoot, "test.json"),
		},
		{
			name:        "dot_segments_collapse_inside",
			requestPath: "/docs/../test.json",
			wantPath:    filepath.Join(absRoot, "test.json"),
		},
		{
			name:        "escape_and_reenter_collapses_inside",
			requestPath: "/../fixtures/test.json",
			wantPath:    filepath.Join(absRoot, "test.json"),
		},
		{
			name:        "escape_to_root_parent",
			requestPath: "/../secret.txt",
			wantErr:     response.ErrForbidden,
		},
		{
			name:        "deep_escape",
			requestPath: "/../../../../etc/passwd",
			wantErr:     response.ErrForbidden,
		},
		{
			name:        "encoded_traversal_decoded_once",
			requestPath: "/%2e%2e/secret.txt",
			wantErr:     response.ErrForbidden,
		},
		{
			name:        "malformed_percent_encoding",
			requestPath: "/%zz",
			wantErr:     response.ErrNotFound,
		},
		{
			name:        "directory_with_index",
			requestPath: "/docs",
			index:       "index.html",
			wantPath:    filepath.Join(absRoot, "docs", "index.html"),
		},
		{
			name:        "directory_without_index",
			requestPath: "/docs",
			wantErr:     response.ErrNotFound,
		},
		{
			name:        "root_request_with_index",
			requestPath: "/",
			index:       "index.html",
			wantPath:    filepath.Join(absRoot, "index.html"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target, err := resolve(root, tt.requestPath, tt.index)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, target.path)
			assert.Equal(t, absRoot, target.root)
		})
	}
}

func TestResolveTrustedRootOutsideNominal(t *testing.T) {
	t.Parallel()

	// `..` inside the configured root is operator input and trusted;
	// only the request path is contained.
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a", "file.txt"), []byte("x"), 0o644))

	root := filepath.Join(tmp, "a", "b", "..")
	target, err := resolve(root, "/file.txt", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "a", "file.txt"), target.path)
}

func TestWithin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		root   string
		target string
		want   bool
	}{
		{"inside", "/srv/root", "/srv/root/a/b", true},
		{"root_itself", "/srv/root", "/srv/root", true},
		{"outside", "/srv/root", "/srv/other", false},
		{"parent", "/srv/root", "/srv", false},
		{"sibling_string_prefix", "/srv/root", "/srv/root-evil/x", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, within(filepath.FromSlash(tt.root), filepath.FromSlash(tt.target)))
		})
	}
}
