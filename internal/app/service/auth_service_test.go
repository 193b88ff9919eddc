package service

import (
	"testing"

	"github.com/jcastror/elfogon-backend/internal/app/repository"
	"github.com/jcastror/elfogon-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	return NewAuthService(userRepo)
}

func TestAuthService_Register_Success(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, err := authService.Register("juan", "juan@example.com", "secreto123", "Juan Castro", "8888-0000")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "juan", user.Username)
	assert.Equal(t, "juan@example.com", user.Email)

	// The stored credential is a hash, never the password itself
	assert.NotEqual(t, "secreto123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("", "juan@example.com", "secreto123", "Juan", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = authService.Register("juan", "juan@example.com", "", "Juan", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	// Whitespace-only fields count as missing
	_, err = authService.Register("juan", "juan@example.com", "secreto123", "   ", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("juan", "juan@example.com", "secreto123", "Juan", "")
	require.NoError(t, err)

	_, err = authService.Register("juan", "otro@example.com", "secreto123", "Otro Juan", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("juan", "juan@example.com", "secreto123", "Juan", "")
	require.NoError(t, err)

	_, err = authService.Register("juancho", "juan@example.com", "secreto123", "Juancho", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	authService := setupAuthServiceTest(t)

	registered, err := authService.Register("juan", "juan@example.com", "secreto123", "Juan Castro", "")
	require.NoError(t, err)

	identity, err := authService.Authenticate("juan", "secreto123")
	require.NoError(t, err)

	assert.Equal(t, registered.ID, identity.ID)
	assert.Equal(t, "juan", identity.Username)
	assert.Equal(t, "Juan Castro", identity.Name)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("juan", "juan@example.com", "secreto123", "Juan", "")
	require.NoError(t, err)

	_, err = authService.Authenticate("juan", "equivocada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	authService := setupAuthServiceTest(t)

	// Unknown user and wrong password are indistinguishable to the caller
	_, err := authService.Authenticate("nadie", "loquesea")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
