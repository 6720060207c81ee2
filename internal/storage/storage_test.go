package storage_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/startender/tender-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStorageInterfaceCompliance verifies that all storage implementations
// properly implement the Storage interface.
func TestStorageInterfaceCompliance(t *testing.T) {
	var _ storage.Storage = (*storage.LocalStorage)(nil)
	var _ storage.Storage = (*storage.AzureBlobStorage)(nil)
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	basePath := filepath.Join(tempDir, "uploads")

	ls, err := storage.NewLocalStorage(basePath)

	require.NoError(t, err)
	assert.NotNil(t, ls)
	assert.Equal(t, basePath, ls.BasePath())

	info, err := os.Stat(basePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_Upload(t *testing.T) {
	tempDir := t.TempDir()
	ls, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)

	tests := []struct {
		name        string
		category    string
		filename    string
		contentType string
		content     []byte
	}{
		{
			name:        "upload PDF file",
			category:    "bid",
			filename:    "document.pdf",
			contentType: "application/pdf",
			content:     []byte("fake pdf content"),
		},
		{
			name:        "upload image file",
			category:    "kyc",
			filename:    "photo.jpg",
			contentType: "image/jpeg",
			content:     []byte{0xFF, 0xD8, 0xFF, 0xE0}, // JPEG magic bytes
		},
		{
			name:        "upload file with special characters",
			category:    "contract",
			filename:    "file with spaces.docx",
			contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			content:     []byte("docx content"),
		},
		{
			name:        "upload empty file",
			category:    "invoice",
			filename:    "empty.txt",
			contentType: "text/plain",
			content:     []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := bytes.NewReader(tt.content)

			storagePath, size, err := ls.Upload(context.Background(), tt.category, tt.filename, tt.contentType, reader)

			require.NoError(t, err)
			assert.NotEmpty(t, storagePath)
			assert.Equal(t, int64(len(tt.content)), size)

			// Path is namespaced by category and keeps the extension
			assert.True(t, strings.HasPrefix(storagePath, tt.category+"/"), "path should start with category: %s", storagePath)
			assert.Equal(t, filepath.Ext(tt.filename), filepath.Ext(storagePath))

			// The original base name is discarded
			assert.NotContains(t, filepath.Base(storagePath), strings.TrimSuffix(tt.filename, filepath.Ext(tt.filename)))
		})
	}
}

func TestLocalStorage_UniqueStoragePaths(t *testing.T) {
	tempDir := t.TempDir()
	ls, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)

	// Upload the same filename multiple times
	paths := make(map[string]bool)
	content := []byte("same content")

	for i := 0; i < 5; i++ {
		storagePath, _, err := ls.Upload(context.Background(), "bid", "same-name.txt", "text/plain", bytes.NewReader(content))
		require.NoError(t, err)

		assert.False(t, paths[storagePath], "storage path should be unique: %s", storagePath)
		assert.Equal(t, ".txt", filepath.Ext(storagePath))
		paths[storagePath] = true
	}

	assert.Len(t, paths, 5)
}

func TestLocalStorage_Download(t *testing.T) {
	tempDir := t.TempDir()
	ls, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)

	content := []byte("test content for download")
	storagePath, _, err := ls.Upload(context.Background(), "bid", "test.txt", "text/plain", bytes.NewReader(content))
	require.NoError(t, err)

	reader, err := ls.Download(context.Background(), storagePath)
	require.NoError(t, err)
	defer reader.Close()

	downloaded, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, downloaded)
}

func TestLocalStorage_Download_FileNotFound(t *testing.T) {
	tempDir := t.TempDir()
	ls, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)

	reader, err := ls.Download(context.Background(), "bid/nonexistent.txt")

	assert.Error(t, err)
	assert.Nil(t, reader)
	assert.Contains(t, err.Error(), "file not found")
}

func TestLocalStorage_Delete(t *testing.T) {
	tempDir := t.TempDir()
	ls, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)

	content := []byte("file to be deleted")
	storagePath, _, err := ls.Upload(context.Background(), "bid", "delete-me.txt", "text/plain", bytes.NewReader(content))
	require.NoError(t, err)

	err = ls.Delete(context.Background(), storagePath)
	require.NoError(t, err)

	fullPath := filepath.Join(tempDir, filepath.FromSlash(storagePath))
	_, err = os.Stat(fullPath)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_Delete_Idempotent(t *testing.T) {
	tempDir := t.TempDir()
	ls, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)

	content := []byte("delete me twice")
	storagePath, _, err := ls.Upload(context.Background(), "bid", "double-delete.txt", "text/plain", bytes.NewReader(content))
	require.NoError(t, err)

	err = ls.Delete(context.Background(), storagePath)
	require.NoError(t, err)

	// Second delete should succeed (idempotent)
	err = ls.Delete(context.Background(), storagePath)
	assert.NoError(t, err)
}

func TestLocalStorage_UploadDownloadRoundtrip(t *testing.T) {
	tempDir := t.TempDir()
	ls, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		content []byte
	}{
		{"small file", []byte("small file")},
		{"medium file", bytes.Repeat([]byte("x"), 1024)},
		{"large file", bytes.Repeat([]byte("L"), 1024*100)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storagePath, size, err := ls.Upload(context.Background(), "bid", "test.bin", "application/octet-stream", bytes.NewReader(tc.content))
			require.NoError(t, err)
			assert.Equal(t, int64(len(tc.content)), size)

			reader, err := ls.Download(context.Background(), storagePath)
			require.NoError(t, err)
			defer reader.Close()

			downloaded, err := io.ReadAll(reader)
			require.NoError(t, err)
			assert.Equal(t, tc.content, downloaded)
		})
	}
}
