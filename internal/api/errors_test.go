package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/nvoronina/adboard-api/internal/service/auth"
	"github.com/nvoronina/adboard-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not_found",
			err:        store.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "user_not_found",
			err:        store.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "ad_not_found",
			err:        store.ErrAdNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrapped_not_found",
			err:        fmt.Errorf("lookup failed: %w", store.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "constraint_violation",
			err:        store.ErrBadLuck,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped_constraint_violation",
			err:        fmt.Errorf("%w: duplicate value", store.ErrBadLuck),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "auth_error",
			err:        auth.ErrAuth,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown_error",
			err:        errors.New("something broke"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Not found", GetSafeErrorMessage(store.ErrUserNotFound))
	assert.Equal(t, "Not found", GetSafeErrorMessage(store.ErrAdNotFound))
	assert.Equal(t, "Bad luck", GetSafeErrorMessage(store.ErrBadLuck))
	assert.Equal(t, "Auth error", GetSafeErrorMessage(auth.ErrAuth))
	assert.Equal(t, "Unknown error", GetSafeErrorMessage(errors.New("boom")))
}
