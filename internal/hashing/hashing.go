// Package hashing provides weak position hashing for repetition detection.
// The hash is a cheap prefilter: equal placements always hash equal, so
// repetition counting only falls back to exact string comparison on a hash hit.
package hashing

// Code is the type for position hash values.
type Code uint64

// FNV-1a parameters.
const (
	offset64 Code = 14695981039346656037
	prime64  Code = 1099511628211
)

// Placement hashes the piece-placement field of a position-encoding string.
func Placement(placement string) Code {
	h := offset64
	for i := 0; i < len(placement); i++ {
		h ^= Code(placement[i])
		h *= prime64
	}
	return h
}
