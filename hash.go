package hashbench

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/sha3"
	"hash/crc32"
)

// HashMode selects the string hash function of a Dictionary.
type HashMode int

const (
	// HashXXH64 is xxHash64, the default
	HashXXH64 HashMode = iota
	// HashCRC32C is CRC-32 with the Castagnoli polynomial
	HashCRC32C
	// HashTimes31 is the classic h = h*31 + c string hash
	HashTimes31
	// HashSHA3 is the first 8 bytes of SHA3-256
	HashSHA3
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// HashModes returns every supported mode in report order.
func HashModes() []HashMode {
	return []HashMode{HashXXH64, HashCRC32C, HashTimes31, HashSHA3}
}

func (m HashMode) String() string {
	switch m {
	case HashXXH64:
		return "xxh64"
	case HashCRC32C:
		return "crc32c"
	case HashTimes31:
		return "times31"
	case HashSHA3:
		return "sha3"
	default:
		return "unknown"
	}
}

// HashFunc ...
type HashFunc func(key string) uint64

// Func returns the hash function for the mode, panics on an unknown mode.
func (m HashMode) Func() HashFunc {
	switch m {
	case HashXXH64:
		return xxhash.Sum64String
	case HashCRC32C:
		return hashCRC32C
	case HashTimes31:
		return hashTimes31
	case HashSHA3:
		return hashSHA3
	default:
		panic("unknown hash mode")
	}
}

func hashCRC32C(key string) uint64 {
	return uint64(crc32.Update(0, crc32cTable, []byte(key)))
}

func hashTimes31(key string) uint64 {
	h := uint32(0)
	for i := 0; i < len(key); i++ {
		h = h*31 + uint32(key[i])
	}
	return uint64(h)
}

func hashSHA3(key string) uint64 {
	sum := sha3.Sum256([]byte(key))
	return binary.LittleEndian.Uint64(sum[:8])
}
