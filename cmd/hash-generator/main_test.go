package main

import (
	"strings"
	"testing"

	"github.com/phrazzld/clinic-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashLines(t *testing.T) {
	verifier := auth.NewBcryptVerifier(4)
	var out strings.Builder

	err := hashLines(strings.NewReader("admin-password\n\nsecond-one\n"), &out, verifier)
	require.NoError(t, err)

	hashes := strings.Fields(out.String())
	require.Len(t, hashes, 2, "blank lines are skipped")
	assert.NoError(t, verifier.Compare(hashes[0], "admin-password"))
	assert.NoError(t, verifier.Compare(hashes[1], "second-one"))
	assert.Error(t, verifier.Compare(hashes[0], "second-one"))
}
