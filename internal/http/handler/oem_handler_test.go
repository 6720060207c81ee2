package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/http/handler"
	"github.com/startender/tender-api/internal/repository"
	"github.com/startender/tender-api/internal/service"
	"github.com/startender/tender-api/internal/storage"
	"github.com/startender/tender-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupOEMRouter(t *testing.T) chi.Router {
	db := testutil.SetupTestDB(t)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	oemRepo := repository.NewOEMRepository(db)
	oemService := service.NewOEMService(oemRepo, store, zap.NewNop())
	h := handler.NewOEMHandler(oemService, 5<<20, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/oems", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/documents", h.ListDocuments)
		r.Post("/{id}/documents", h.UploadDocument)
		r.Get("/{id}/documents/{documentId}/download", h.DownloadDocument)
	})
	return r
}

func createOEMViaAPI(t *testing.T, router http.Handler) domain.OEMDTO {
	t.Helper()
	rr := postJSON(t, router, "/api/oems", domain.CreateOEMRequest{
		CompanyName: "Precision Parts Ltd",
		Email:       "sales@precision.example",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var dto domain.OEMDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	return dto
}

func multipartUpload(t *testing.T, router http.Handler, path, documentType, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if documentType != "" {
		require.NoError(t, writer.WriteField("documentType", documentType))
	}
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestOEMHandler_CreateAndGet(t *testing.T) {
	router := setupOEMRouter(t)

	created := createOEMViaAPI(t, router)
	assert.Equal(t, domain.OEMStatusPending, created.OEMStatus)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/oems/%d", created.ID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var fetched domain.OEMDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, "Precision Parts Ltd", fetched.CompanyName)
}

func TestOEMHandler_Create_InvalidStatus(t *testing.T) {
	router := setupOEMRouter(t)

	rr := postJSON(t, router, "/api/oems", domain.CreateOEMRequest{
		CompanyName: "Bad Status Ltd",
		Email:       "bad@example.com",
		OEMStatus:   domain.OEMStatus("suspended"),
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOEMHandler_Delete(t *testing.T) {
	router := setupOEMRouter(t)

	created := createOEMViaAPI(t, router)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/oems/%d", created.ID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var msg domain.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
	assert.Equal(t, "OEM deleted successfully", msg.Message)

	getReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/oems/%d", created.ID), nil)
	getRR := httptest.NewRecorder()
	router.ServeHTTP(getRR, getReq)
	assert.Equal(t, http.StatusNotFound, getRR.Code)
}

func TestOEMHandler_UploadDocument(t *testing.T) {
	router := setupOEMRouter(t)
	oem := createOEMViaAPI(t, router)

	rr := multipartUpload(t, router,
		fmt.Sprintf("/api/oems/%d/documents", oem.ID),
		"iso-certificate", "cert.pdf", []byte("certificate data"))

	require.Equal(t, http.StatusCreated, rr.Code)

	var doc domain.OEMDocumentDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(t, oem.ID, doc.OEMID)
	assert.Equal(t, "iso-certificate", doc.DocumentType)
	assert.Equal(t, "cert.pdf", doc.FileName)
	assert.Equal(t, int64(len("certificate data")), doc.FileSize)
}

func TestOEMHandler_UploadDocument_MissingDocumentType(t *testing.T) {
	router := setupOEMRouter(t)
	oem := createOEMViaAPI(t, router)

	rr := multipartUpload(t, router,
		fmt.Sprintf("/api/oems/%d/documents", oem.ID),
		"", "cert.pdf", []byte("x"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOEMHandler_UploadDocument_OEMNotFound(t *testing.T) {
	router := setupOEMRouter(t)

	rr := multipartUpload(t, router, "/api/oems/9999/documents", "license", "l.pdf", []byte("x"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOEMHandler_DownloadDocument(t *testing.T) {
	router := setupOEMRouter(t)
	oem := createOEMViaAPI(t, router)

	content := []byte("license scan")
	uploaded := multipartUpload(t, router,
		fmt.Sprintf("/api/oems/%d/documents", oem.ID),
		"trade-license", "license.png", content)
	require.Equal(t, http.StatusCreated, uploaded.Code)

	var doc domain.OEMDocumentDTO
	require.NoError(t, json.Unmarshal(uploaded.Body.Bytes(), &doc))

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/oems/%d/documents/%d/download", oem.ID, doc.ID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), `filename="license.png"`)

	data, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestOEMHandler_ListDocuments(t *testing.T) {
	router := setupOEMRouter(t)
	oem := createOEMViaAPI(t, router)

	for _, name := range []string{"a.pdf", "b.pdf"} {
		rr := multipartUpload(t, router,
			fmt.Sprintf("/api/oems/%d/documents", oem.ID),
			"license", name, []byte("x"))
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/oems/%d/documents", oem.ID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var docs []domain.OEMDocumentDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &docs))
	assert.Len(t, docs, 2)
}
