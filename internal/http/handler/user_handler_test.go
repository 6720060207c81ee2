package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/http/handler"
	"github.com/startender/tender-api/internal/repository"
	"github.com/startender/tender-api/internal/service"
	"github.com/startender/tender-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupUserRouter(t *testing.T) chi.Router {
	db := testutil.SetupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo, zap.NewNop())
	h := handler.NewUserHandler(userService, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func putJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestUserHandler_Create(t *testing.T) {
	router := setupUserRouter(t)

	rr := postJSON(t, router, "/api/users", domain.CreateUserRequest{
		Username: "jdoe",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	})

	require.Equal(t, http.StatusCreated, rr.Code)

	var dto domain.UserDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.NotZero(t, dto.ID)
	assert.Equal(t, "jdoe", dto.Username)
	assert.Equal(t, domain.UserRoleUser, dto.Role)
	assert.True(t, dto.Active)
}

func TestUserHandler_Create_ValidationErrors(t *testing.T) {
	router := setupUserRouter(t)

	rr := postJSON(t, router, "/api/users", domain.CreateUserRequest{
		Username: "",
		FullName: "No Username",
		Email:    "not-an-email",
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "username")
	assert.Contains(t, apiErr.Errors, "email")
}

func TestUserHandler_Create_DuplicateUsername(t *testing.T) {
	router := setupUserRouter(t)

	req := domain.CreateUserRequest{
		Username: "jdoe",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/users", req).Code)

	rr := postJSON(t, router, "/api/users", req)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	router := setupUserRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/9999", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var errResp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, "Not Found", errResp.Error)
}

func TestUserHandler_GetByID_InvalidID(t *testing.T) {
	router := setupUserRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserHandler_Update_RestampsUpdatedAt(t *testing.T) {
	router := setupUserRouter(t)

	created := postJSON(t, router, "/api/users", domain.CreateUserRequest{
		Username: "jdoe",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var dto domain.UserDTO
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &dto))

	rr := putJSON(t, router, fmt.Sprintf("/api/users/%d", dto.ID), domain.UpdateUserRequest{
		Username: "jdoe",
		FullName: "Jane A. Doe",
		Email:    "jane@example.com",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated domain.UserDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Jane A. Doe", updated.FullName)
	assert.NotEmpty(t, updated.UpdatedAt)
}

func TestUserHandler_Delete_ReturnsConfirmation(t *testing.T) {
	router := setupUserRouter(t)

	created := postJSON(t, router, "/api/users", domain.CreateUserRequest{
		Username: "leaver",
		FullName: "Leaving User",
		Email:    "leaver@example.com",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var dto domain.UserDTO
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &dto))

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/users/%d", dto.ID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var msg domain.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
	assert.Equal(t, "User deactivated successfully", msg.Message)

	// The account remains fetchable, now inactive
	getReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/users/%d", dto.ID), nil)
	getRR := httptest.NewRecorder()
	router.ServeHTTP(getRR, getReq)
	require.Equal(t, http.StatusOK, getRR.Code)

	var fetched domain.UserDTO
	require.NoError(t, json.Unmarshal(getRR.Body.Bytes(), &fetched))
	assert.False(t, fetched.Active)
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	router := setupUserRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/9999", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUserHandler_List(t *testing.T) {
	router := setupUserRouter(t)

	for i := 0; i < 3; i++ {
		rr := postJSON(t, router, "/api/users", domain.CreateUserRequest{
			Username: fmt.Sprintf("user%d", i),
			FullName: "User",
			Email:    "user@example.com",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var users []domain.UserDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 3)
}
