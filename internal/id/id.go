// Package id generates and checks request identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	requestPrefix   = "req-"
	requestAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	requestSize     = 16

	// maxRequestIDLen bounds client-supplied IDs.
	maxRequestIDLen = 64
)

// NewRequest returns an ID such as "req-3k9v0x7q2m1b8c4d".
func NewRequest() (string, error) {
	s, err := gonanoid.Generate(requestAlphabet, requestSize)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return requestPrefix + s, nil
}

// MustNewRequest is like NewRequest but panics if ID generation fails.
func MustNewRequest() string {
	s, err := NewRequest()
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return s
}

// ValidRequest reports whether a client-supplied ID is safe to echo back
// and log: 1 to 64 characters from [A-Za-z0-9._-].
func ValidRequest(s string) bool {
	if s == "" || len(s) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
