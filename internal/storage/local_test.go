package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{
		Type:     "local",
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	path := "resumes/user-1/cv.pdf"
	require.NoError(t, s.Save(ctx, path, strings.NewReader("pdf-bytes"), "application/pdf"))

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	r, err := s.Get(ctx, path)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	r.Close()
	assert.Equal(t, "pdf-bytes", string(data))

	require.NoError(t, s.Delete(ctx, path))
	exists, err = s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_URLRoundTrip(t *testing.T) {
	s := newLocal(t)

	url, err := s.GetURL(context.Background(), "logos/user-2/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/logos/user-2/logo.png", url)

	path, ok := s.PathFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "logos/user-2/logo.png", path)

	_, ok = s.PathFromURL("https://elsewhere.example/file.png")
	assert.False(t, ok)
}

func TestLocalStorage_NeutralizesTraversal(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(Config{Type: "local", BasePath: base, BaseURL: ""})
	require.NoError(t, err)
	ctx := context.Background()

	// "../" отбрасывается, файл остается внутри basePath
	require.NoError(t, s.Save(ctx, "../escape.txt", strings.NewReader("x"), "text/plain"))

	_, err = os.Stat(filepath.Join(filepath.Dir(base), "escape.txt"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(base, "escape.txt"))
	assert.NoError(t, err)
}
