// Package env reads the few settings needed before config.Load runs.
package env

import (
	"os"
	"strings"
)

const prefix = "CATALOGUE_"

// Lookup returns the first non-blank value of CATALOGUE_<key> or key.
func Lookup(key string) (string, bool) {
	for _, name := range []string{prefix + key, key} {
		if val := strings.TrimSpace(os.Getenv(name)); val != "" {
			return val, true
		}
	}
	return "", false
}

// Get is Lookup with a fallback.
func Get(key, fallback string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return fallback
}
