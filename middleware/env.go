package middleware

import "os"

// GetEnv reads an environment variable, returning fallback (if given)
// when the variable is unset.
func GetEnv(key string, fallback ...string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}
