package services_test

import (
	"testing"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/app/repositories"
	"github.com/shashiranjanraj/sweetshop/app/services"
	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	db := newTestDB(t)
	return services.NewAuthService(repositories.NewUserRepository(db))
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	cases := []struct {
		name     string
		userName string
		email    string
		password string
		message  string
	}{
		{"missing name", "", "a@b.com", "secret1", "All fields are required"},
		{"missing email", "A", "", "secret1", "All fields are required"},
		{"missing password", "A", "a@b.com", "", "All fields are required"},
		{"short password", "A", "a@b.com", "12345", "Password must be at least 6 characters"},
		{"bad email", "A", "not-an-email", "secret1", "Invalid email format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.userName, tc.email, tc.password)
			require.Error(t, err)
			assert.Equal(t, apperr.Validation, apperr.KindOf(err))
			assert.Equal(t, tc.message, apperr.Message(err))
		})
	}
}

func TestRegisterStoresHashedPasswordAndUserRole(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Asha", "asha@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret1", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("Asha", "asha@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register("Other", "asha@example.com", "secret2")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Equal(t, "Email already exists", apperr.Message(err))
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("Asha", "asha@example.com", "secret1")
	require.NoError(t, err)

	user, token, err := svc.Login("asha@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEmpty(t, token)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("Asha", "asha@example.com", "secret1")
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, _, unknownErr := svc.Login("nobody@example.com", "secret1")
	_, _, wrongErr := svc.Login("asha@example.com", "wrong-password")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(unknownErr))
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(wrongErr))
	assert.Equal(t, apperr.Message(unknownErr), apperr.Message(wrongErr))
	assert.Equal(t, "Invalid credentials", apperr.Message(wrongErr))
}
