package utils

import (
	rndm "math/rand"
	"os"
	"strings"
	"unicode"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Directory Helper ---

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SanitizeSlug uppercases a value and strips everything that is not
// alphanumeric. Returns fallback when nothing survives.
func SanitizeSlug(value, fallback string) string {
	var sb strings.Builder
	for _, ch := range strings.ToUpper(value) {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			sb.WriteRune(ch)
		}
	}
	if sb.Len() == 0 {
		return fallback
	}
	return sb.String()
}

// --- Env Helper ---

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
