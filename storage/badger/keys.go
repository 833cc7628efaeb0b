package badger

import (
	"github.com/poiesic/cvfind/storage"
)

// Key prefixes for different data types
const (
	recordPrefix   = "cvrec"
	recordIDPrefix = "cvid"
	recordPosSeq   = "cvseq"
)

// makeRecordKey generates the primary key for a record at a collection position.
// Format: prefix:position (8 bytes BigEndian, so iteration follows insertion order)
func makeRecordKey(pos uint64) []byte {
	prefix := []byte(recordPrefix + ":")
	buf := make([]byte, 0, len(prefix)+8)
	buf = append(buf, prefix...)
	return append(buf, storage.MarshalPosition(pos)...)
}

// recordKeyPrefix is the iteration prefix covering every primary record key.
func recordKeyPrefix() []byte {
	return []byte(recordPrefix + ":")
}

// makeIDKey generates the index key mapping a record ID to its position.
// Format: prefix:id
func makeIDKey(id string) []byte {
	return []byte(recordIDPrefix + ":" + id)
}
