package hashfunc

// HashAlgorithm - Interface that permits an implementation using the CourseCatalog to supply a custom bucket
// selection algorithm suited for its particular distribution of course ids.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new course catalog. Hence, if a custom hash algorithm is supplied that
	// implements this interface and the instance is already having a table size, it will be overwritten by the
	// number of buckets that was supplied when creating the course catalog.
	//   - tableSize is the number of buckets the catalog will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The catalog never resizes, so the value returned here decides the number of buckets for its whole lifetime.
	GetTableSize() int64
}
