package isohash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// mix64 is the Steele et al. mix64variant13 avalanche finaliser. It is
// the fixed mixing function behind clause hashes and rank colors; the
// same constants must be used on every platform for the fingerprint to
// be portable.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// hash2 hashes the concatenation of two little-endian 64-bit words
// with XXH3-64.
func hash2(a, b uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], a)
	binary.LittleEndian.PutUint64(buf[8:16], b)

	return xxh3.Hash(buf[:])
}

// hash3 hashes the concatenation of three little-endian 64-bit words
// with XXH3-64.
func hash3(a, b, c uint64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], a)
	binary.LittleEndian.PutUint64(buf[8:16], b)
	binary.LittleEndian.PutUint64(buf[16:24], c)

	return xxh3.Hash(buf[:])
}
