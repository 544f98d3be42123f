// Package hashing provides order-sensitive content hashing for the
// collections in this module.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strconv"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return hexDigest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 hash of the given Hashable as a hex-encoded
// string. It is much faster than Sha256 and suitable when the hash is not
// exposed to adversarial input.
func Xxh3(hashable Hashable) (string, error) {
	return hexDigest(xxh3.New(), hashable)
}

// XxHash64 returns the 64-bit xxHash of the given Hashable as a hex-encoded string.
func XxHash64(hashable Hashable) (string, error) {
	return hexDigest(xxhash.New64(), hashable)
}

// Sum64 feeds the Hashable into a fresh XXH3 hasher and returns the raw
// 64-bit digest.
func Sum64(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

func hexDigest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashableString is a string which implements Hashable.
type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	return UpdateAny(h, string(s))
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// HashableInt is an int which implements Hashable.
type HashableInt int

func (i HashableInt) String() string {
	return strconv.Itoa(int(i))
}

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return UpdateAny(h, int64(i))
}

func (i HashableInt) Equals(other HashableInt) bool {
	return i == other
}
