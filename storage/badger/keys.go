package badger

import (
	"fmt"

	"github.com/poiesic/toolscout/core"
)

// Key prefixes for different data types
const (
	toolRecordPrefix = "toolrec"
	toolNamePrefix   = "toolnam"
)

// makeToolRecordKey generates a key for a tool record by ID.
func makeToolRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", toolRecordPrefix, id))
}

// makeToolNameKey generates a key for the name index.
// Format: prefix:name
func makeToolNameKey(name string) []byte {
	prefix := toolNamePrefix + ":"
	buf := make([]byte, len(prefix)+len(name))
	offset := copy(buf, []byte(prefix))
	copy(buf[offset:], []byte(name))
	return buf
}
