package users

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBuildValidUser(t *testing.T) {
	u, berr := NewBuilder().
		Name("admin").
		Email("admin@example.com").
		Password("s3cret!").
		Build()
	require.Nil(t, berr)
	require.Equal(t, "admin", u.Name)
	require.Equal(t, "admin@example.com", u.Email)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret!")))
}

func TestBuildEmptyEmailReturnsUsableRecord(t *testing.T) {
	u, berr := NewBuilder().Name("admin").Password("s3cret!").Build()
	require.Nil(t, u)
	require.NotNil(t, berr)
	require.Equal(t, EmptyEmail, berr.Kind)
	require.NotNil(t, berr.User)
	require.Equal(t, "admin", berr.User.Name)
	require.Empty(t, berr.User.Email)
	require.NotEmpty(t, berr.User.PasswordHash)
}

func TestBuildHardFailures(t *testing.T) {
	tests := []struct {
		name     string
		builder  *Builder
		wantKind BuildErrorKind
	}{
		{
			name:     "empty name",
			builder:  NewBuilder().Email("a@b.com").Password("pw"),
			wantKind: InvalidName,
		},
		{
			name:     "whitespace name",
			builder:  NewBuilder().Name("   ").Email("a@b.com").Password("pw"),
			wantKind: InvalidName,
		},
		{
			name:     "empty password",
			builder:  NewBuilder().Name("admin").Email("a@b.com"),
			wantKind: InvalidPassword,
		},
		{
			name:     "malformed email",
			builder:  NewBuilder().Name("admin").Email("not-an-email").Password("pw"),
			wantKind: InvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, berr := tt.builder.Build()
			require.Nil(t, u)
			require.NotNil(t, berr)
			require.Equal(t, tt.wantKind, berr.Kind)
			require.Nil(t, berr.User, "hard failures must not return a usable record")
		})
	}
}

func TestBuildPasswordCheckedBeforeEmail(t *testing.T) {
	// Both password and email are invalid; password wins.
	_, berr := NewBuilder().Name("admin").Email("not-an-email").Build()
	require.NotNil(t, berr)
	require.Equal(t, InvalidPassword, berr.Kind)
}
