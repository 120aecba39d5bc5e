package errors

import (
	"strings"
	"unicode"
)

// maxPeerIDLength bounds peer identifiers to keep reports and DOT
// output readable.
const maxPeerIDLength = 128

// ValidatePeerID validates a peer identifier from external input
// (manifests, CLI arguments). The core mesh package accepts any
// string; this stricter check is applied at the boundary so that
// malformed input fails early with a clear code.
//
// The rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - No leading/trailing whitespace
//   - Maximum length of 128 characters
func ValidatePeerID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPeer, "peer id cannot be empty")
	}

	if len(id) > maxPeerIDLength {
		return New(ErrCodeInvalidPeer, "peer id too long (max %d characters)", maxPeerIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPeer, "peer id contains control characters: %q", id)
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidPeer, "peer id has leading or trailing whitespace: %q", id)
	}

	return nil
}

// ValidateWeight validates a connection weight from external input.
// Weights model interaction frequency or quality and must be positive.
func ValidateWeight(weight int) error {
	if weight < 1 {
		return New(ErrCodeInvalidWeight, "connection weight must be positive, got %d", weight)
	}
	return nil
}
