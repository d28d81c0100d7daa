package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/dorkit/core"
)

const (
	operatorRecordPrefix   = "oprec"
	operatorTokenPrefix    = "optok"
	operatorCategoryPrefix = "opcat"
)

// makeOperatorKey generates a key for an operator by ID.
func makeOperatorKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", operatorRecordPrefix, id))
}

// makeOperatorRecordPrefix returns the prefix shared by all operator records.
func makeOperatorRecordPrefix() []byte {
	return []byte(operatorRecordPrefix + ":")
}

// makeOperatorTokenKey generates a key for the token index.
// Format: prefix:token
func makeOperatorTokenKey(token string) []byte {
	return []byte(operatorTokenPrefix + ":" + token)
}

// makeOperatorCategoryKey generates a composite key for the category index.
// Format: prefix:category:id
func makeOperatorCategoryKey(category core.Category, id core.ID) []byte {
	prefix := makePartialOperatorCategoryKey(category)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialOperatorCategoryKey generates a partial key for category scans.
// Format: prefix:category:
func makePartialOperatorCategoryKey(category core.Category) []byte {
	return []byte(operatorCategoryPrefix + ":" + string(category) + ":")
}

// idFromCategoryKey extracts the operator ID from a category index key.
func idFromCategoryKey(key []byte) (core.ID, bool) {
	if len(key) < 8 {
		return 0, false
	}
	return core.ID(binary.BigEndian.Uint64(key[len(key)-8:])), true
}
