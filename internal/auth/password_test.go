package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast; the format is identical.
var testParams = Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher(testParams)

	first, err := h.Hash("p")
	require.NoError(t, err)
	second, err := h.Hash("p")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salt must differ per call")
	assert.True(t, strings.HasPrefix(first, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.True(t, h.Verify(first, "p"))
	assert.True(t, h.Verify(second, "p"))
	assert.False(t, h.Verify(first, "q"))
}

func TestPasswordHasher_VerifyUsesEmbeddedParams(t *testing.T) {
	t.Parallel()
	digest, err := NewPasswordHasher(testParams).Hash("secret")
	require.NoError(t, err)

	other := NewPasswordHasher(Argon2Params{Time: 2, Memory: 2048, Threads: 2})
	assert.True(t, other.Verify(digest, "secret"))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher(testParams)

	cases := []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
	}
	for _, digest := range cases {
		assert.NotPanics(t, func() {
			assert.False(t, h.Verify(digest, "p"), "digest %q", digest)
		})
	}
}

func TestNewPasswordHasher_FillsDefaults(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher(Argon2Params{})
	assert.Equal(t, DefaultArgon2Params, h.params)
}
