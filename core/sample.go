package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier.
type ID uint64

// IDFromContent generates a deterministic ID from raw content using BLAKE2b hashing.
// Identical content produces identical IDs.
func IDFromContent(content []byte) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(content)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Sample is one probe input: the data under test, the keywords to look for
// and the exceptions that must not count as a match.
type Sample struct {
	Data       []string
	Keywords   []string
	Exceptions []string
	Tag        string // Optional label reported when the sample fails
}

// Fingerprint returns a deterministic ID for the sample's contents.
// Samples with equal fields share a fingerprint.
func (s Sample) Fingerprint() ID {
	buf := make([]byte, SampleMUS.Size(s))
	SampleMUS.Marshal(s, buf)
	return IDFromContent(buf)
}
