// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"pricecheck/config"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input beyond 72 bytes.
const bcryptMaxPasswordBytes = 72

//nolint:gochecknoglobals
var defaultForbiddenWords = []string{"password", "admin", "qwerty", "letmein", "pricecheck"}

//nolint:gochecknoglobals
var defaultPasswordStrength = config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        bcryptMaxPasswordBytes,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost           int
	strength       config.PasswordStrengthConfig
	forbiddenWords []string
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost, cfg.PasswordStrength)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost. A nil strength uses the defaults.
func NewBcryptHasherWithCost(cost int, strength *config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	rules := defaultPasswordStrength
	if strength != nil {
		rules = *strength
	}
	if rules.MaxLength <= 0 || rules.MaxLength > bcryptMaxPasswordBytes {
		rules.MaxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{
		cost:           cost,
		strength:       rules,
		forbiddenWords: defaultForbiddenWords,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength reports the first configured rule the password breaks.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	rules := h.strength

	if utf8.RuneCountInString(password) < rules.MinLength {
		return h.weak("password must be at least %d characters long", rules.MinLength)
	}
	if len(password) > rules.MaxLength {
		return h.weak("password must be at most %d bytes long", rules.MaxLength)
	}
	if rules.RequireLowercase && !h.hasLowercase(password) {
		return h.weak("password must contain at least one lowercase letter")
	}
	if rules.RequireUppercase && !h.hasUppercase(password) {
		return h.weak("password must contain at least one uppercase letter")
	}
	if rules.RequireNumbers && !h.hasNumbers(password) {
		return h.weak("password must contain at least one number")
	}
	if rules.RequireSpecial && !h.hasSpecialChars(password) {
		return h.weak("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, h.forbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords
	}

	return nil
}

func (h *bcryptHasher) weak(format string, args ...any) error {
	return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf(format, args...))
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
