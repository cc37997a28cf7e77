//go:build unit

package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelpos/internal/domain/user"
)

func TestNewUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "valid", input: "john.doe_1", want: "john.doe_1"},
		{name: "trims surrounding whitespace", input: "  admin  ", want: "admin"},
		{name: "minimum length", input: "abc", want: "abc"},
		{name: "too short", input: "ab", wantErr: user.ErrInvalidUsername},
		{name: "empty", input: "", wantErr: user.ErrInvalidUsername},
		{name: "disallowed characters", input: "john doe", wantErr: user.ErrInvalidUsername},
		{name: "unicode rejected", input: "jöhn", wantErr: user.ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := user.NewUsername(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewMobileNo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "local format", input: "0712345678"},
		{name: "international format", input: "+254712345678"},
		{name: "too short", input: "12345678", wantErr: user.ErrInvalidMobileNo},
		{name: "too long", input: "1234567890123456", wantErr: user.ErrInvalidMobileNo},
		{name: "letters rejected", input: "07one2345678", wantErr: user.ErrInvalidMobileNo},
		{name: "plus only at start", input: "0712+345678", wantErr: user.ErrInvalidMobileNo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := user.NewMobileNo(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("accepts six characters", func(t *testing.T) {
		p, err := user.NewPassword("secret")
		require.NoError(t, err)
		assert.Equal(t, "secret", p.Value())
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := user.NewPassword("12345")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := user.NewCredentials("attendant1", "password123")
		require.NoError(t, err)
		assert.Equal(t, "attendant1", c.Username().Value())
		assert.Equal(t, "password123", c.Password().Value())
	})

	t.Run("invalid username", func(t *testing.T) {
		_, err := user.NewCredentials("a!", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidUsername)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := user.NewCredentials("attendant1", "pw")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewRole(t *testing.T) {
	tests := []struct {
		input   string
		want    user.Role
		wantErr error
	}{
		{input: "admin", want: user.RoleAdmin},
		{input: "attendant", want: user.RoleAttendant},
		{input: "Admin", wantErr: user.ErrInvalidRole},
		{input: "manager", wantErr: user.ErrInvalidRole},
		{input: "", wantErr: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run("role "+tt.input, func(t *testing.T) {
			got, err := user.NewRole(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserActivation(t *testing.T) {
	username, err := user.NewUsername("attendant1")
	require.NoError(t, err)
	mobile, err := user.NewMobileNo("+254712345678")
	require.NoError(t, err)

	u := user.NewUser("Jane Attendant", username, "hash", mobile, user.RoleAttendant)
	assert.True(t, u.IsActive())

	u.Deactivate()
	assert.False(t, u.IsActive())

	u.Activate()
	assert.True(t, u.IsActive())
}
