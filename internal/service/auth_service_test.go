package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idan2468/go-store/internal/domain"
)

func TestSignupAndLogin(t *testing.T) {
	users := newMockUserRepository()
	sut := NewAuthService(users)

	user, err := sut.Signup(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", user.Password, "password stored in plaintext")

	loggedIn, err := sut.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := newMockUserRepository()
	sut := NewAuthService(users)

	_, err := sut.Signup(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	_, err = sut.Signup(context.Background(), "Eve", "ada@example.com", "letmein1")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newMockUserRepository()
	sut := NewAuthService(users)

	_, err := sut.Signup(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	_, err = sut.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	sut := NewAuthService(newMockUserRepository())

	_, err := sut.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestPasswordReset_RoundTrip(t *testing.T) {
	users := newMockUserRepository()
	sut := NewAuthService(users)

	_, err := sut.Signup(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	token, err := sut.StartPasswordReset(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = sut.ResetPassword(context.Background(), "ada@example.com", token, "newpass99")
	require.NoError(t, err)

	_, err = sut.Login(context.Background(), "ada@example.com", "newpass99")
	assert.NoError(t, err)

	_, err = sut.Login(context.Background(), "ada@example.com", "hunter22")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestPasswordReset_BadToken(t *testing.T) {
	users := newMockUserRepository()
	sut := NewAuthService(users)

	_, err := sut.Signup(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	_, err = sut.StartPasswordReset(context.Background(), "ada@example.com")
	require.NoError(t, err)

	err = sut.ResetPassword(context.Background(), "ada@example.com", "forged-token", "newpass99")
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestPasswordReset_TokenIsSingleUse(t *testing.T) {
	users := newMockUserRepository()
	sut := NewAuthService(users)

	_, err := sut.Signup(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	token, err := sut.StartPasswordReset(context.Background(), "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, sut.ResetPassword(context.Background(), "ada@example.com", token, "newpass99"))

	err = sut.ResetPassword(context.Background(), "ada@example.com", token, "again1234")
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}
