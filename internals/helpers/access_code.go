package helper

import (
	"crypto/rand"
	"fmt"
)

// Tanpa 0/O/1/I biar gampang dibaca & diketik
const accessCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const AccessCodeLength = 8

// GenerateAccessCode membuat kode undangan channel acak (8 karakter).
func GenerateAccessCode() (string, error) {
	buf := make([]byte, AccessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("gagal generate access code: %w", err)
	}
	for i, b := range buf {
		buf[i] = accessCodeCharset[int(b)%len(accessCodeCharset)]
	}
	return string(buf), nil
}
