package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointUUIDFromHashID(t *testing.T) {
	id := "0123456789abcdef0123456789abcdef"
	uuid := pointUUID(id)
	assert.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", uuid)
}

func TestPointUUIDFromArbitraryID(t *testing.T) {
	uuid := pointUUID("not-a-hash")
	assert.Len(t, uuid, 36)
	assert.Equal(t, uuid, pointUUID("not-a-hash"), "mapping must be deterministic")
	assert.NotEqual(t, uuid, pointUUID("another-id"))
}
