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

func createTestDocumentService(t *testing.T) (*service.DocumentService, string) {
	db := testutil.SetupTestDB(t)
	tempDir := t.TempDir()
	store, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)

	documentRepo := repository.NewDocumentRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	svc := service.NewDocumentService(documentRepo, activityRepo, store, zap.NewNop())
	return svc, tempDir
}

func TestDocumentService_Upload(t *testing.T) {
	svc, tempDir := createTestDocumentService(t)
	ctx := context.Background()

	content := []byte("fake pdf content")
	relatedID := uint(12)
	kind := domain.RelatedKindTender
	dto, err := svc.Upload(ctx, &domain.CreateDocumentRequest{
		Title:         "Bid Package",
		Type:          domain.DocumentTypeBid,
		RelatedToID:   &relatedID,
		RelatedToType: &kind,
	}, "bid-package.pdf", "application/pdf", bytes.NewReader(content))
	require.NoError(t, err)

	assert.NotZero(t, dto.ID)
	assert.Equal(t, domain.DocumentStatusPending, dto.Status)
	assert.Equal(t, int64(len(content)), dto.FileSize)
	require.NotNil(t, dto.RelatedTo)
	assert.Equal(t, domain.RelatedKindTender, dto.RelatedTo.Kind)
	assert.Equal(t, relatedID, dto.RelatedTo.ID)

	// File lands under the lowercased type category with the extension kept
	assert.Equal(t, ".pdf", filepath.Ext(dto.FilePath))
	_, err = os.Stat(filepath.Join(tempDir, filepath.FromSlash(dto.FilePath)))
	assert.NoError(t, err)
	assert.Contains(t, dto.FilePath, "bid/")
}

func TestDocumentService_Upload_InvalidType(t *testing.T) {
	svc, _ := createTestDocumentService(t)

	_, err := svc.Upload(context.Background(), &domain.CreateDocumentRequest{
		Title: "Mystery File",
		Type:  domain.DocumentType("RECEIPT"),
	}, "file.txt", "text/plain", bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestDocumentService_Upload_PartialRelatedRefRejected(t *testing.T) {
	svc, _ := createTestDocumentService(t)

	relatedID := uint(5)
	_, err := svc.Upload(context.Background(), &domain.CreateDocumentRequest{
		Title:       "Half Reference",
		Type:        domain.DocumentTypeKYC,
		RelatedToID: &relatedID,
	}, "file.txt", "text/plain", bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, service.ErrInvalidRelatedKind)
}

func TestDocumentService_Upload_UnknownRelatedKindRejected(t *testing.T) {
	svc, _ := createTestDocumentService(t)

	relatedID := uint(5)
	kind := domain.RelatedKind("invoice")
	_, err := svc.Upload(context.Background(), &domain.CreateDocumentRequest{
		Title:         "Wrong Kind",
		Type:          domain.DocumentTypeKYC,
		RelatedToID:   &relatedID,
		RelatedToType: &kind,
	}, "file.txt", "text/plain", bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, service.ErrInvalidRelatedKind)
}

func TestDocumentService_Download(t *testing.T) {
	svc, _ := createTestDocumentService(t)
	ctx := context.Background()

	content := []byte("downloadable content")
	dto, err := svc.Upload(ctx, &domain.CreateDocumentRequest{
		Title: "Contract",
		Type:  domain.DocumentTypeContract,
	}, "contract.pdf", "application/pdf", bytes.NewReader(content))
	require.NoError(t, err)

	reader, filename, contentType, err := svc.Download(ctx, dto.ID)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, ".pdf", filepath.Ext(filename))

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestDocumentService_Download_NotFound(t *testing.T) {
	svc, _ := createTestDocumentService(t)

	_, _, _, err := svc.Download(context.Background(), 9999)
	assert.ErrorIs(t, err, service.ErrDocumentNotFound)
}

func TestDocumentService_Update_MetadataOnly(t *testing.T) {
	svc, _ := createTestDocumentService(t)
	ctx := context.Background()

	dto, err := svc.Upload(ctx, &domain.CreateDocumentRequest{
		Title: "Draft Title",
		Type:  domain.DocumentTypeInvoice,
	}, "invoice.pdf", "application/pdf", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, dto.ID, &domain.UpdateDocumentRequest{
		Title:  "Final Title",
		Type:   domain.DocumentTypeInvoice,
		Status: domain.DocumentStatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, "Final Title", updated.Title)
	assert.Equal(t, domain.DocumentStatusApproved, updated.Status)
	// The stored file is untouched by metadata updates
	assert.Equal(t, dto.FilePath, updated.FilePath)
	assert.Equal(t, dto.FileSize, updated.FileSize)
}

func TestDocumentService_Delete_RemovesFile(t *testing.T) {
	svc, tempDir := createTestDocumentService(t)
	ctx := context.Background()

	dto, err := svc.Upload(ctx, &domain.CreateDocumentRequest{
		Title: "Disposable",
		Type:  domain.DocumentTypeKYC,
	}, "disposable.txt", "text/plain", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, dto.ID))

	_, err = svc.GetByID(ctx, dto.ID)
	assert.ErrorIs(t, err, service.ErrDocumentNotFound)

	_, err = os.Stat(filepath.Join(tempDir, filepath.FromSlash(dto.FilePath)))
	assert.True(t, os.IsNotExist(err))
}
