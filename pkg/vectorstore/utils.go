package vectorstore

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// pointUUID maps an arbitrary document ID onto the UUID shape Qdrant
// accepts for point IDs. IDs that are already 32 hex characters (the
// excerpt hash format) are reshaped directly; anything else is hashed
// first. The mapping is deterministic so upserts stay idempotent.
func pointUUID(id string) string {
	hexID := strings.ToLower(id)
	if len(hexID) != 32 || !isHex(hexID) {
		sum := sha256.Sum256([]byte(id))
		hexID = hex.EncodeToString(sum[:16])
	}
	return fmt.Sprintf("%s-%s-%s-%s-%s",
		hexID[0:8], hexID[8:12], hexID[12:16], hexID[16:20], hexID[20:32])
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
