package user

import (
	"net/mail"
	"strings"

	"doctospeech/utils"
)

const minPasswordLength = 8

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < minPasswordLength {
		return utils.Validationf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// normalizeEmail lowercases and validates an address.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", utils.Validationf("invalid email address")
	}
	return email, nil
}

func (s *DefaultUserService) issueToken(id, email string, userType string) (string, error) {
	return utils.GenerateToken(s.JWTSecret, id, email, userType, s.TokenTTL)
}
