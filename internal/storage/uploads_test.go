package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeUpload(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["image"][0]
}

func TestSaveUpload(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.EnsureDir())

	url, err := store.SaveUpload("gallery", 7, "Dreams of Summer", fakeUpload(t, "cover.PNG", "image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/gallery_7_Dreams_of_Summer_"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	data, err := os.ReadFile(filepath.Join(store.Dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestSaveUploadSameTitleDoesNotCollide(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.EnsureDir())

	first, err := store.SaveUpload("artwork", 1, "Untitled", fakeUpload(t, "a.jpg", "first"))
	require.NoError(t, err)
	second, err := store.SaveUpload("artwork", 1, "Untitled", fakeUpload(t, "b.jpg", "second"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveUploadStripsPathCharacters(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.EnsureDir())

	url, err := store.SaveUpload("gallery", 2, "../etc/passwd", fakeUpload(t, "x.gif", "g"))
	require.NoError(t, err)

	assert.NotContains(t, strings.TrimPrefix(url, "/uploads/"), "/")
	assert.NotContains(t, url, "..")
}
