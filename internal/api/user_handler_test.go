package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nvoronina/adboard-api/internal/domain"
	"github.com/nvoronina/adboard-api/internal/service/auth"
	"github.com/nvoronina/adboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockUserStore is a mock implementation of store.UserStore for testing
type MockUserStore struct {
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	CreateFn  func(ctx context.Context, user *domain.User) error
	DeleteFn  func(ctx context.Context, id int64) error
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// newUserRouter mounts a UserHandler on a chi router with the production routes.
func newUserRouter(userStore store.UserStore) http.Handler {
	handler := NewUserHandler(userStore, auth.NewLegacyHasher("qwerty"), nil)

	r := chi.NewRouter()
	r.Get("/users/{id}", handler.GetUser)
	r.Post("/users/", handler.CreateUser)
	r.Delete("/users/{id}", handler.DeleteUser)
	return r
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockUserStore)
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name: "existing_user",
			path: "/users/1",
			setupMock: func(ms *MockUserStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.User, error) {
					return &domain.User{
						ID:       id,
						Username: "bob",
						Email:    "bob@x.com",
						Password: "bb786a4fd62a3e4484cf075abbbb8813",
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"id":       float64(1),
				"username": "bob",
				"email":    "bob@x.com",
			},
		},
		{
			name: "missing_user",
			path: "/users/999999",
			setupMock: func(ms *MockUserStore) {
				ms.GetByIDFn = func(ctx context.Context, id int64) (*domain.User, error) {
					return nil, store.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: map[string]interface{}{
				"message": "Not found",
			},
		},
		{
			name:           "non_numeric_id",
			path:           "/users/abc",
			setupMock:      func(ms *MockUserStore) {},
			expectedStatus: http.StatusNotFound,
			expectedBody: map[string]interface{}{
				"message": "Not found",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := &MockUserStore{}
			tt.setupMock(mockStore)
			router := newUserRouter(mockStore)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rec))
		})
	}
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("successful_registration", func(t *testing.T) {
		t.Parallel()

		var stored *domain.User
		mockStore := &MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				user.ID = 1
				stored = user
				return nil
			},
		}
		router := newUserRouter(mockStore)

		payload, err := json.Marshal(CreateUserRequest{
			Username: "bob",
			Email:    "bob@x.com",
			Password: "pw1",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]interface{}{
			"id":       float64(1),
			"username": "bob",
			"email":    "bob@x.com",
		}, decodeBody(t, rec))

		// The handler hashes before persisting; raw passwords never reach the store
		require.NotNil(t, stored)
		assert.NotEqual(t, "pw1", stored.Password)
		assert.Equal(t, "bb786a4fd62a3e4484cf075abbbb8813", stored.Password)
	})

	t.Run("duplicate_username", func(t *testing.T) {
		t.Parallel()

		mockStore := &MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				return store.ErrBadLuck
			},
		}
		router := newUserRouter(mockStore)

		payload := []byte(`{"username":"bob","email":"bob2@x.com","password":"pw1"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]interface{}{"message": "Bad luck"}, decodeBody(t, rec))
	})

	t.Run("malformed_json", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(&MockUserStore{})

		req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing_required_fields", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(&MockUserStore{})

		payload := []byte(`{"username":"bob"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("successful_delete", func(t *testing.T) {
		t.Parallel()

		var deletedID int64
		mockStore := &MockUserStore{
			DeleteFn: func(ctx context.Context, id int64) error {
				deletedID = id
				return nil
			},
		}
		router := newUserRouter(mockStore)

		req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]interface{}{"response": "User has been deleted"}, decodeBody(t, rec))
		assert.Equal(t, int64(1), deletedID)
	})

	t.Run("missing_user", func(t *testing.T) {
		t.Parallel()

		mockStore := &MockUserStore{
			DeleteFn: func(ctx context.Context, id int64) error {
				return store.ErrUserNotFound
			},
		}
		router := newUserRouter(mockStore)

		req := httptest.NewRequest(http.MethodDelete, "/users/999999", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, map[string]interface{}{"message": "Not found"}, decodeBody(t, rec))
	})

	t.Run("user_with_dependent_ads", func(t *testing.T) {
		t.Parallel()

		mockStore := &MockUserStore{
			DeleteFn: func(ctx context.Context, id int64) error {
				return store.ErrBadLuck
			},
		}
		router := newUserRouter(mockStore)

		req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]interface{}{"message": "Bad luck"}, decodeBody(t, rec))
	})
}
