package domain_test

import (
	"testing"

	"github.com/nvoronina/adboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("bob", "bob@x.com", "bb786a4fd62a3e4484cf075abbbb8813")
	require.NoError(t, err)

	assert.Zero(t, user.ID, "ID is assigned by the store")
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "bob@x.com", user.Email)
}

func TestUser_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid_user",
			username: "bob",
			email:    "bob@x.com",
			password: "hash",
			wantErr:  nil,
		},
		{
			name:     "empty_username",
			username: "",
			email:    "bob@x.com",
			password: "hash",
			wantErr:  domain.ErrEmptyUsername,
		},
		{
			name:     "empty_email",
			username: "bob",
			email:    "",
			password: "hash",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "email_without_at",
			username: "bob",
			email:    "bob.x.com",
			password: "hash",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "email_without_domain_dot",
			username: "bob",
			email:    "bob@xcom",
			password: "hash",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "email_dot_at_end",
			username: "bob",
			email:    "bob@x.com.",
			password: "hash",
			wantErr:  nil,
		},
		{
			name:     "empty_password",
			username: "bob",
			email:    "bob@x.com",
			password: "",
			wantErr:  domain.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user := &domain.User{
				Username: tt.username,
				Email:    tt.email,
				Password: tt.password,
			}

			err := user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
