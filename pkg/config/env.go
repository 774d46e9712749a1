package config

import (
	"os"
	"strconv"
)

// GetEnv returns the variable's value, or defaultValue when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsEnvSet reports whether the variable holds a non-empty value.
func IsEnvSet(key string) bool {
	return os.Getenv(key) != ""
}

// GetEnvAsBool parses the variable with strconv.ParseBool, falling back to
// defaultValue when it is unset or unparseable.
func GetEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// ColorEnabled is false when NO_COLOR holds any value or the terminal is "dumb".
func ColorEnabled() bool {
	return !IsEnvSet("NO_COLOR") && GetEnv("TERM", "") != "dumb"
}

// MaskPasswords reports whether password prompts should hide input on a terminal.
// ONLINE_BANKING_SHOW_PASSWORDS=true turns masking off.
func MaskPasswords() bool {
	return !GetEnvAsBool("ONLINE_BANKING_SHOW_PASSWORDS", false)
}
