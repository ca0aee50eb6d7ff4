package badger

import "encoding/binary"

// Key prefixes for different data types
const (
	samplePrefix = "smpl"
	sampleIDSeq  = "smplseq"
)

// makeSampleKey generates a key for a stored sample by sequence ID.
// Format: prefix:id
func makeSampleKey(id uint64) []byte {
	prefix := samplePrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], id)
	return buf
}
