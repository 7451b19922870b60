package embedding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "plain text", Sanitize("plain text"))
	assert.Equal(t, "ab", Sanitize("a\x00b"))
	assert.Equal(t, "ok", Sanitize("ok\xff"))
	// The API rejects empty payloads outright; never send one.
	assert.Equal(t, " ", Sanitize(""))
	assert.Equal(t, " ", Sanitize("   \n\t"))
}

func TestErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &Error{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "embedding failed")

	var embErr *Error
	assert.ErrorAs(t, error(err), &embErr)
}
