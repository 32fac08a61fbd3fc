package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(ECYCLE, "node %d is an ancestor of node %d", 3, 7)
	assert.Equal(t, ECYCLE, Code(err))
	assert.Equal(t, "node 3 is an ancestor of node 7", UserMessage(err))
	assert.Contains(t, err.Error(), "cyclic tree")
	//
	wrapped := fmt.Errorf("loading fixture: %w", err)
	assert.Equal(t, ECYCLE, Code(wrapped))
}

func TestWrapError(t *testing.T) {
	base := errors.New("unexpected EOF")
	err := WrapError(base, ESYNTAX, "style attribute of #%s", "a")
	assert.Equal(t, ESYNTAX, Code(err))
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, "style attribute of #a", UserMessage(err))
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(base))
	assert.Equal(t, "internal error", UserMessage(base))
	assert.Equal(t, EMISSING, Code(ErrorWithCode(nil, EMISSING)))
}
