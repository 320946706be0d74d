// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 72 // bcrypt ignores bytes past 72
)

var forbiddenPasswordWords = []string{"password", "пароль", "qwerty", "123456", "admin"}

// passwordPolicy mirrors config.PasswordStrengthConfig.
type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

func defaultPasswordPolicy() passwordPolicy {
	return passwordPolicy{
		minLength:        defaultMinPasswordLength,
		maxLength:        defaultMaxPasswordLength,
		requireLowercase: true,
		requireNumbers:   true,
	}
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy passwordPolicy
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Cost and password policy come from the auth and passwordStrength sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost:   bcrypt.DefaultCost,
		policy: defaultPasswordPolicy(),
	}

	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}

	if ps := cfg.PasswordStrength; ps != nil {
		if ps.MinLength > 0 {
			hasher.policy.minLength = ps.MinLength
		}
		if ps.MaxLength > 0 && ps.MaxLength < defaultMaxPasswordLength {
			hasher.policy.maxLength = ps.MaxLength
		}
		hasher.policy.requireUppercase = ps.RequireUppercase
		hasher.policy.requireLowercase = ps.RequireLowercase
		hasher.policy.requireNumbers = ps.RequireNumbers
		hasher.policy.requireSpecial = ps.RequireSpecial
	}

	return hasher
}

// NewBcryptHasherWithCost builds a hasher with the default policy and the given cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, policy: defaultPasswordPolicy()}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// Strength is checked separately, see ValidatePasswordStrength.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Matches reports whether password produced hash. Malformed hashes never match.
func (h *bcryptHasher) Matches(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength returns ErrPasswordStrength or ErrPasswordForbiddenWords
// with the failed rule in Details.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)

	switch {
	case length < h.policy.minLength:
		return domainerrors.ErrPasswordStrength.WithDetails(pluralChars("не короче", h.policy.minLength))
	case len(password) > h.policy.maxLength:
		return domainerrors.ErrPasswordStrength.WithDetails(pluralChars("не длиннее", h.policy.maxLength))
	case h.policy.requireUppercase && !h.hasUppercase(password):
		return domainerrors.ErrPasswordStrength.WithDetails("нужна хотя бы одна заглавная буква")
	case h.policy.requireLowercase && !h.hasLowercase(password):
		return domainerrors.ErrPasswordStrength.WithDetails("нужна хотя бы одна строчная буква")
	case h.policy.requireNumbers && !h.hasNumbers(password):
		return domainerrors.ErrPasswordStrength.WithDetails("нужна хотя бы одна цифра")
	case h.policy.requireSpecial && !h.hasSpecialChars(password):
		return domainerrors.ErrPasswordStrength.WithDetails("нужен хотя бы один специальный символ")
	case h.containsForbiddenWords(password, forbiddenPasswordWords):
		return domainerrors.ErrPasswordForbiddenWords
	}

	return nil
}

func pluralChars(prefix string, n int) string {
	return fmt.Sprintf("%s %d символов", prefix, n)
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
