package id

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// DeriveBondID derives a stable 32-char hex identifier from the freelancer
// address and a caller-supplied seed. The same (freelancer, seed) pair always
// yields the same ID, so a duplicate create collides on the unique index
// instead of minting a second bond.
func DeriveBondID(freelancer string, seed uint64) string {
	h := sha256.New()
	h.Write([]byte("bond:"))
	h.Write([]byte(freelancer))
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	h.Write(b[:])
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}
