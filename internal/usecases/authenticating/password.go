package authenticating

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost é o custo do bcrypt usado em todas as senhas
const PasswordCost = 12

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// NormalizeEmail remove espaços das pontas e converte para minúsculas
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(NormalizeEmail(email))
}

// IsStrongPassword exige ao menos 8 caracteres, uma letra ASCII e um dígito
func IsStrongPassword(password string) bool {
	if len([]rune(password)) < minPasswordLength {
		return false
	}

	var hasLetter, hasDigit bool
	for _, char := range password {
		switch {
		case char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z':
			hasLetter = true
		case char >= '0' && char <= '9':
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
