package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Digest returns the lowercase hex SHA-256 of the canonical JSON form of
// value. Canonicalization round-trips the value through a generic structure
// so that object keys are emitted in sorted order regardless of struct field
// order; the same logical value always produces the same digest.
func Digest(value any) (string, error) {
	canonical, err := canonicalJSON(value)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalJSON(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("store: value is not serializable: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("store: failed to normalize value: %w", err)
	}

	// encoding/json sorts map keys, so marshaling the generic form yields a
	// canonical byte sequence.
	canonical, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("store: failed to canonicalize value: %w", err)
	}
	return canonical, nil
}
