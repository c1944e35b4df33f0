package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// NewSessionID mints an opaque, URL-safe cart session identifier.
func NewSessionID() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// OrderNumber formats a human-readable order number from the order's
// sequential id, e.g. ORD-20260901-000042.
func OrderNumber(id int64, at time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", at.Format("20060102"), id)
}
