package repository

import (
	"log"
	"os"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseTimestamp decodes a stored RFC3339Nano attribute. A corrupted value
// yields the zero time so the item still loads, but the corruption is logged
// instead of being silently swallowed.
func parseTimestamp(reference, attr, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		log.Printf("[repository] corrupted %s attribute reference=%s value=%q err=%v", attr, reference, value, err)
		return time.Time{}
	}
	return ts
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
