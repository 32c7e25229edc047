package password

import (
	"strings"
	"unicode"
)

// MinLength минимально допустимая длина пароля.
const MinLength = 8

// commonPasswords — короткий список самых распространённых паролей.
// Сравнение выполняется без учёта регистра.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"admin123":    {},
	"welcome1":    {},
	"letmein1":    {},
}

// ValidateStrength проверяет пароль по правилам стойкости и возвращает
// список всех нарушенных правил. Пустой список означает, что пароль принят.
func ValidateStrength(raw string) []string {
	var violations []string

	if len(raw) < MinLength {
		violations = append(violations, "password must contain at least 8 characters")
	}
	if raw != "" && isEntirelyNumeric(raw) {
		violations = append(violations, "password cannot be entirely numeric")
	}
	if _, ok := commonPasswords[strings.ToLower(raw)]; ok {
		violations = append(violations, "password is too common")
	}

	return violations
}

func isEntirelyNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
