package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("avatar")
	require.NoError(t, err)
	return header
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/static/avatars")
	require.NoError(t, err)

	url, err := storage.SaveFile(uploadedFileHeader(t, "photo.png", "fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/static/avatars/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(saved))
}

func TestSaveFileNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/static/avatars")
	require.NoError(t, err)

	url, err := storage.SaveFile(nil)
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/static/avatars")
	require.NoError(t, err)

	url, err := storage.SaveFile(uploadedFileHeader(t, "photo.jpg", "x"))
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(url))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is not an error
	assert.NoError(t, storage.DeleteFile(url))
	assert.NoError(t, storage.DeleteFile(""))
}
