package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestIsDeterministic(t *testing.T) {
	d1 := Digest("segredo123")
	d2 := Digest("segredo123")
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)
	assert.True(t, IsDigest(d1))
}

func TestIsDigest(t *testing.T) {
	assert.True(t, IsDigest(Digest("x")))
	assert.False(t, IsDigest("segredo123"))
	assert.False(t, IsDigest(""))
	// uppercase hex is not a stored digest shape
	assert.False(t, IsDigest("ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789"))
}

func TestVerify(t *testing.T) {
	digest := Digest("segredo123")
	assert.True(t, Verify("segredo123", digest))
	assert.False(t, Verify("errada", digest))
	assert.False(t, Verify("segredo123", ""))
}
