package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingReader returns a non-EOF error on every read.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

// TestRun_OneLine reads the first line only and prints one verdict line.
func TestRun_OneLine(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(A,B) (A,C)\n", "(A(B)(C))\n"},
		{"(A,B) (A,C)\r\n", "(A(B)(C))\n"},
		{"(A,B) (A,C)", "(A(B)(C))\n"},
		{"(A,B) (B,A)\n(A,B)\n", "E4\n"},
		{"", "E1\n"},
		{"(A,B) \n", "E1\n"},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		err := run(strings.NewReader(tc.in), &out, log.New(io.Discard, "", 0))
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, out.String(), "input %q", tc.in)
	}
}

// TestRun_ReadError surfaces non-EOF read failures.
func TestRun_ReadError(t *testing.T) {
	var out bytes.Buffer
	err := run(failingReader{}, &out, log.New(io.Discard, "", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
	assert.Empty(t, out.String())
}

// TestEvaluate_VerboseLog writes each violation and the competing roots.
func TestEvaluate_VerboseLog(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs, appName+": ", 0)

	assert.Equal(t, "E4", evaluate("(A,C) (B,C)", logger))
	assert.Contains(t, logs.String(), "pair 1 (B,C): E4")
	assert.Contains(t, logs.String(), "roots: [A B]")

	logs.Reset()
	assert.Equal(t, "E1", evaluate("(A,1)", logger))
	assert.Contains(t, logs.String(), "invalid input")
}
