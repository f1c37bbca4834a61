package badger

import (
	"fmt"

	"github.com/carvisor/carvisor/core"
)

// Key prefixes for different data types.
// The source index prefix extends the document prefix, so the similarity
// scan over documentPrefix must skip documentSourcePrefix keys.
const (
	documentPrefix       = "docrec"
	documentSourcePrefix = "docrecsrc"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeSourceKey generates a composite key for the source index.
// Format: prefix:source:id
func makeSourceKey(source string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", documentSourcePrefix, source, id))
}

// makeSourceScanPrefix generates the iteration prefix for all documents of a source.
func makeSourceScanPrefix(source string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", documentSourcePrefix, source))
}
