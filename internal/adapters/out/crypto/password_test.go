package crypto_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/crypto"
)

func TestBcryptHasher(t *testing.T) {
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, hasher.Matches(hash, "s3cret-pass"))
	assert.False(t, hasher.Matches(hash, "wrong-pass"))
	assert.False(t, hasher.Matches("not-a-hash", "s3cret-pass"))
}

func TestOTPGenerator_Generate(t *testing.T) {
	gen := crypto.NewOTPGenerator(6)
	sixDigits := regexp.MustCompile(`^[0-9]{6}$`)

	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Regexp(t, sixDigits, code)
	}
}
