package conf

// DefaultTableSize - Number of buckets used when no table size is configured
const DefaultTableSize int64 = 100

// NoKey - Bucket number carried by a head record that has never been occupied
const NoKey int64 = -1

// NoOverflow - Overflow address meaning end of chain, handle 0 is never handed out by the overflow arena
const NoOverflow int64 = 0

// MinRecordFields - Minimum number of fields (id and title) a raw input record must have
const MinRecordFields int = 2
