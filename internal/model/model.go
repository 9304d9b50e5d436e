package model

import (
	"github.com/gostonefire/coursecatalog/course"
	"github.com/gostonefire/coursecatalog/hashfunc"
)

// RecordEmpty - State indicating a record that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a bucket head that has been in use but was removed while still having overflow
const RecordDeleted uint8 = 2

// Bucket - Represents the head record of a bucket and where its overflow chain starts
type Bucket struct {
	Record          Record
	BucketNo        int64
	OverflowAddress int64
}

// Record - Represents one course record, either a bucket head or an overflow node
//   - BucketNo is the bucket the course was hashed into, conf.NoKey for a never used head
//   - RecordAddress is the bucket number for a head record and the arena handle for an overflow record
type Record struct {
	State         uint8
	IsOverflow    bool
	BucketNo      int64
	RecordAddress int64
	NextOverflow  int64
	Course        course.Course
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	NumberOfBuckets   int64
	OverflowCapacity  int64
	OverflowFree      int64
	InternalAlgorithm bool
}

// TableConf - Is a struct to be passed in the call to NewSCTable and contains configuration that affects
// table processing.
//   - NumberOfBuckets is the number of buckets to create
//   - HashAlgorithm is the hash function to use, nil selects the internal one
type TableConf struct {
	NumberOfBuckets int64
	HashAlgorithm   hashfunc.HashAlgorithm
}
