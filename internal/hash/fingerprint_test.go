package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	write := func() uint64 {
		f := NewFingerprint()
		f.WriteString("voter-1")
		f.WriteUint64(1000)
		f.WriteUint32(3)

		return f.Sum()
	}

	require.Equal(t, write(), write())
}

func TestFingerprint_OrderSensitive(t *testing.T) {
	a := NewFingerprint()
	a.WriteString("v0")
	a.WriteString("v1")

	b := NewFingerprint()
	b.WriteString("v1")
	b.WriteString("v0")

	assert.NotEqual(t, a.Sum(), b.Sum())
}

func TestFingerprint_NoFieldAliasing(t *testing.T) {
	// "ab" + "c" must not collide with "a" + "bc".
	a := NewFingerprint()
	a.WriteString("ab")
	a.WriteString("c")

	b := NewFingerprint()
	b.WriteString("a")
	b.WriteString("bc")

	assert.NotEqual(t, a.Sum(), b.Sum())
}

func TestOfString(t *testing.T) {
	require.Equal(t, OfString("snapshot"), OfString("snapshot"))
	assert.NotEqual(t, OfString("snapshot"), OfString("snapshots"))
}
