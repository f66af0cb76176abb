// Package hash provides xxh3-based snapshot fingerprinting. A
// fingerprint identifies the exact electorate an election consumed, so
// a failure (for example an invalid index during compression) can be
// correlated with the snapshot that produced it.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint accumulates a streaming xxh3 digest over snapshot fields.
// The zero value is not usable; create one with NewFingerprint.
type Fingerprint struct {
	h *xxh3.Hasher
}

// NewFingerprint creates an empty fingerprint accumulator.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{h: xxh3.New()}
}

// WriteString folds a string field into the digest. The length is folded
// first so adjacent fields cannot alias.
func (f *Fingerprint) WriteString(s string) {
	f.WriteUint64(uint64(len(s)))
	_, _ = f.h.WriteString(s)
}

// WriteUint64 folds a 64-bit field into the digest.
func (f *Fingerprint) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = f.h.Write(buf[:])
}

// WriteUint32 folds a 32-bit field into the digest.
func (f *Fingerprint) WriteUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = f.h.Write(buf[:])
}

// Sum returns the digest of everything written so far.
func (f *Fingerprint) Sum() uint64 {
	return f.h.Sum64()
}

// OfString is a one-shot fingerprint of a single string.
func OfString(s string) uint64 {
	return xxh3.HashString(s)
}
