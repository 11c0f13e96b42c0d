// Package seed turns a (name, timeline, salt) triple into a reproducible
// 32-bit seed and hands out deterministic random sources built from it.
// Every logical operation (one pick pass, one Monte Carlo trial, the fact
// shuffle) gets its own source so streams never interleave.
package seed

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
)

// seedModulus is 2^32 - 1. Digests reduce into this range so the seed fits
// any 32-bit random source backend.
var seedModulus = new(big.Int).SetUint64(1<<32 - 1)

// Derive computes the base seed for an identity. Name and timeline are
// trimmed and lowercased, joined with "::", hashed with SHA-256, and the
// digest reduced mod 2^32-1. Any input is valid; an empty name is simply an
// empty key and stays deterministic.
func Derive(name, timeline string) uint32 {
	key := normalize(name) + "::" + normalize(timeline)
	sum := sha256.Sum256([]byte(key))
	return reduce(sum)
}

// DeriveSalted mixes a salt into the base seed by hashing the decimal form
// of "<base>:<salt>" with the same digest and reduction. The salted step
// runs even for an empty salt, so Derive and DeriveSalted(_, _, "") yield
// different (but equally stable) seeds.
func DeriveSalted(name, timeline, salt string) uint32 {
	base := Derive(name, timeline)
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s", base, salt)))
	return reduce(sum)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func reduce(sum [sha256.Size]byte) uint32 {
	n := new(big.Int).SetBytes(sum[:])
	return uint32(n.Mod(n, seedModulus).Uint64())
}
