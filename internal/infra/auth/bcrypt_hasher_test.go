package auth

import (
	"testing"

	"pricecheck/config"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	hasher, _ := NewBcryptHasherWithCost(bcrypt.MinCost, nil).(*bcryptHasher)

	return hasher
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPass123", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	for _, password := range []string{"StrongPass123", "MySecure@Pass1", "Pässphräse123"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"", "at least 8 characters long"},
		{"Ab1", "at least 8 characters long"},
		{"PASSWORD123", "at least one lowercase letter"},
		{"secure123x", "at least one uppercase letter"},
		{"SecureABCx", "at least one number"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)

			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, "PASSWORD_STRENGTH", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tc.expectedErr)
		})
	}
}

func TestBcryptHasher_ForbiddenWords(t *testing.T) {
	hasher := newTestHasher()

	for _, password := range []string{"MyPassword123", "SuperAdmin99"} {
		err := hasher.ValidatePasswordStrength(password)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordForbiddenWords, password)
	}
}

func TestBcryptHasher_RequireSpecialFromConfig(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, &config.PasswordStrengthConfig{
		MinLength:      8,
		RequireSpecial: true,
	})

	err := hasher.ValidatePasswordStrength("nospecial1")
	require.Error(t, err)
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "special character")

	assert.NoError(t, hasher.ValidatePasswordStrength("has-special1"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost, nil)

	hash, err := hasher.Hash("StrongPass123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestNewBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)
	assert.Equal(t, bcryptMaxPasswordBytes, hasher.strength.MaxLength)
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))
	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))
	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))
	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))

	forbiddenWords := []string{"password", "admin"}
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", forbiddenWords))
	assert.True(t, hasher.containsForbiddenWords("AdminUser", forbiddenWords))
	assert.False(t, hasher.containsForbiddenWords("SecurePass123", forbiddenWords))
}
