package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", digest)

	assert.True(t, Verify("correct horse battery staple", digest))
	assert.False(t, Verify("wrong password", digest))
	assert.False(t, Verify("", digest))
}

func TestHash_Salted(t *testing.T) {
	first, err := Hash("same input")
	assert.NoError(t, err)
	second, err := Hash("same input")
	assert.NoError(t, err)

	// bcrypt salts, so equal inputs produce different digests.
	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same input", first))
	assert.True(t, Verify("same input", second))
}

func TestGenerateSecure_Policy(t *testing.T) {
	for i := 0; i < 20; i++ {
		generated, err := GenerateSecure()
		assert.NoError(t, err)
		assert.Len(t, generated, GeneratedLength)
		assert.True(t, strings.ContainsAny(generated, lowerChars), "missing lowercase: %q", generated)
		assert.True(t, strings.ContainsAny(generated, upperChars), "missing uppercase: %q", generated)
		assert.True(t, strings.ContainsAny(generated, digitChars), "missing digit: %q", generated)
		assert.True(t, strings.ContainsAny(generated, specialChars), "missing special: %q", generated)
	}
}

func TestGenerateSecure_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		generated, err := GenerateSecure()
		assert.NoError(t, err)
		assert.False(t, seen[generated], "duplicate generated password")
		seen[generated] = true
	}
}
