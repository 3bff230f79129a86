package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMessage(t *testing.T) {
	msg, err := readMessage(strings.NewReader("ignored"), []string{"verify", "the", "earth", "is", "flat"})
	require.NoError(t, err)
	assert.Equal(t, "verify the earth is flat", msg)

	msg, err = readMessage(strings.NewReader("Fwd: line one\nline two\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Fwd: line one\nline two\n", msg)
}
