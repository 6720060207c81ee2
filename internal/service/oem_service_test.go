package service_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/repository"
	"github.com/startender/tender-api/internal/service"
	"github.com/startender/tender-api/internal/storage"
	"github.com/startender/tender-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createTestOEMService(t *testing.T) (*service.OEMService, string) {
	db := testutil.SetupTestDB(t)
	tempDir := t.TempDir()
	store, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)

	oemRepo := repository.NewOEMRepository(db)
	svc := service.NewOEMService(oemRepo, store, zap.NewNop())
	return svc, tempDir
}

func createTestOEM(t *testing.T, svc *service.OEMService) *domain.OEMDTO {
	t.Helper()
	dto, err := svc.Create(context.Background(), &domain.CreateOEMRequest{
		CompanyName:        "Precision Parts Ltd",
		RegistrationNumber: "REG-1001",
		ContactPerson:      "Sam Vendor",
		Email:              "sales@precision.example",
		Phone:              "98765432",
	})
	require.NoError(t, err)
	return dto
}

func TestOEMService_CreateAndGet(t *testing.T) {
	svc, _ := createTestOEMService(t)

	created := createTestOEM(t, svc)
	assert.Equal(t, domain.OEMStatusPending, created.OEMStatus)

	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Precision Parts Ltd", fetched.CompanyName)
}

func TestOEMService_Create_InvalidStatus(t *testing.T) {
	svc, _ := createTestOEMService(t)

	_, err := svc.Create(context.Background(), &domain.CreateOEMRequest{
		CompanyName: "Bad Status Ltd",
		Email:       "bad@example.com",
		OEMStatus:   domain.OEMStatus("suspended"),
	})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestOEMService_Update(t *testing.T) {
	svc, _ := createTestOEMService(t)
	ctx := context.Background()

	created := createTestOEM(t, svc)

	updated, err := svc.Update(ctx, created.ID, &domain.UpdateOEMRequest{
		CompanyName: "Precision Parts Ltd",
		Email:       "sales@precision.example",
		OEMStatus:   domain.OEMStatusVerified,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OEMStatusVerified, updated.OEMStatus)
}

func TestOEMService_UploadAndListDocuments(t *testing.T) {
	svc, _ := createTestOEMService(t)
	ctx := context.Background()

	oem := createTestOEM(t, svc)

	content := []byte("certificate data")
	doc, err := svc.UploadDocument(ctx, oem.ID, "iso-certificate", "cert.pdf", "application/pdf", bytes.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, oem.ID, doc.OEMID)
	assert.Equal(t, "iso-certificate", doc.DocumentType)
	// The original filename is kept for display; the stored path is unique
	assert.Equal(t, "cert.pdf", doc.FileName)
	assert.NotEqual(t, "cert.pdf", filepath.Base(doc.FilePath))
	assert.Equal(t, int64(len(content)), doc.FileSize)

	docs, err := svc.ListDocuments(ctx, oem.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID, docs[0].ID)

	// The parent record embeds its documents
	fetched, err := svc.GetByID(ctx, oem.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Documents, 1)
}

func TestOEMService_UploadDocument_OEMNotFound(t *testing.T) {
	svc, _ := createTestOEMService(t)

	_, err := svc.UploadDocument(context.Background(), 9999, "license", "l.pdf", "application/pdf", bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, service.ErrOEMNotFound)
}

func TestOEMService_DownloadDocument(t *testing.T) {
	svc, _ := createTestOEMService(t)
	ctx := context.Background()

	oem := createTestOEM(t, svc)
	content := []byte("license scan")
	doc, err := svc.UploadDocument(ctx, oem.ID, "trade-license", "license.png", "image/png", bytes.NewReader(content))
	require.NoError(t, err)

	reader, filename, contentType, err := svc.DownloadDocument(ctx, oem.ID, doc.ID)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "license.png", filename)
	assert.Equal(t, "image/png", contentType)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestOEMService_DownloadDocument_WrongOEM(t *testing.T) {
	svc, _ := createTestOEMService(t)
	ctx := context.Background()

	first := createTestOEM(t, svc)
	second, err := svc.Create(ctx, &domain.CreateOEMRequest{
		CompanyName: "Other Vendor AS",
		Email:       "other@example.com",
	})
	require.NoError(t, err)

	doc, err := svc.UploadDocument(ctx, first.ID, "license", "l.pdf", "application/pdf", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	// The document belongs to the first vendor
	_, _, _, err = svc.DownloadDocument(ctx, second.ID, doc.ID)
	assert.ErrorIs(t, err, service.ErrOEMDocumentNotFound)
}

func TestOEMService_Delete_RemovesFiles(t *testing.T) {
	svc, tempDir := createTestOEMService(t)
	ctx := context.Background()

	oem := createTestOEM(t, svc)
	doc, err := svc.UploadDocument(ctx, oem.ID, "license", "l.pdf", "application/pdf", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, oem.ID))

	_, err = svc.GetByID(ctx, oem.ID)
	assert.ErrorIs(t, err, service.ErrOEMNotFound)

	_, err = os.Stat(filepath.Join(tempDir, filepath.FromSlash(doc.FilePath)))
	assert.True(t, os.IsNotExist(err))
}
