package separatechaining

import (
	"fmt"
	"github.com/gostonefire/coursecatalog/catalogerrors"
	"github.com/gostonefire/coursecatalog/course"
	"github.com/gostonefire/coursecatalog/hashfunc"
	"github.com/gostonefire/coursecatalog/internal/conf"
	"github.com/gostonefire/coursecatalog/internal/hash"
	"github.com/gostonefire/coursecatalog/internal/model"
	"github.com/gostonefire/coursecatalog/internal/overflow"
)

// SCTable - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// It uses a fixed array of directly addressable bucket heads and an arena of overflow records where each
// bucket's overflow is managed as a single linked list of arena handles.
type SCTable struct {
	heads             []model.Record
	overflow          []model.Record
	free              []int64
	numberOfBuckets   int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewSCTable - Returns a pointer to a new instance of the Separate Chaining table implementation.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting table creation
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable(tableConf model.TableConf) (scTable *SCTable, err error) {
	if tableConf.NumberOfBuckets <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if tableConf.HashAlgorithm == nil {
		tableConf.HashAlgorithm = hash.NewSeparateChainingHashAlgorithm(tableConf.NumberOfBuckets)
		internalAlg = true
	} else {
		tableConf.HashAlgorithm.SetTableSize(tableConf.NumberOfBuckets)
	}

	numberOfBuckets := tableConf.HashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d which is not usable", numberOfBuckets)
		return
	}

	heads := make([]model.Record, numberOfBuckets)
	for i := range heads {
		heads[i] = emptyHead(int64(i))
	}

	scTable = &SCTable{
		heads:             heads,
		overflow:          make([]model.Record, 1), // Handle 0 is reserved for "no overflow"
		numberOfBuckets:   numberOfBuckets,
		hashAlgorithm:     tableConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets:   S.numberOfBuckets,
		OverflowCapacity:  int64(len(S.overflow) - 1),
		OverflowFree:      int64(len(S.free)),
		InternalAlgorithm: S.internalAlgorithm,
	}

	return
}

// GetBucketNo - Returns which bucket number that the given course id results in
//   - courseId is the identifier of a course
func (S *SCTable) GetBucketNo(courseId string) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1([]byte(courseId))
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("recieved bucket number from bucket algorithm is outside permitted range")
		return
	}

	return
}

// GetBucket - Returns a bucket with its head record given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct containing the head record
//   - overflowIterator is a Records struct that can be used to get any overflow records belonging to the bucket.
//   - err is standard error
func (S *SCTable) GetBucket(bucketNo int64) (bucket model.Bucket, overflowIterator *overflow.Records, err error) {
	bucket, err = S.getBucket(bucketNo)
	if err != nil {
		err = fmt.Errorf("error while getting existing bucket record from table: %s", err)
		return
	}

	overflowIterator = overflow.NewRecords(S.getOverflowRecord, bucket.OverflowAddress)

	return
}

// Get - Gets the first record in chain order that holds a course with the given id.
// The model.Record that is returned contains also its address, this is to let higher level functions such as
// Remove delete exactly that record in a call to Delete.
//   - courseId is the identifier of a course, matching is exact and case-sensitive
//
// It returns:
//   - record is the matching record if found, if not found an error of type catalogerrors.NoRecordFound is also returned.
//   - err is either of type catalogerrors.NoRecordFound or a standard error, if something went wrong
func (S *SCTable) Get(courseId string) (record model.Record, err error) {
	bucketNo, err := S.GetBucketNo(courseId)
	if err != nil {
		return
	}
	bucket, ovflIter, err := S.GetBucket(bucketNo)
	if err != nil {
		return
	}

	if bucket.Record.State == model.RecordOccupied && bucket.Record.Course.CourseId == courseId {
		record = bucket.Record
		return
	}

	for ovflIter.HasNext() {
		record, err = ovflIter.Next()
		if err != nil {
			return
		}
		if record.State == model.RecordOccupied && record.Course.CourseId == courseId {
			return
		}
	}

	record = model.Record{}
	err = catalogerrors.NoRecordFound{}

	return
}

// Set - Adds a course to its bucket. If the bucket head is free the course is put there, otherwise it is
// appended last in the bucket's overflow chain. No check for duplicate course ids is made.
//   - c is the course to add, it is copied so the caller keeps ownership of its prerequisite slice
//
// It returns:
//   - err is a standard error, if something went wrong
func (S *SCTable) Set(c course.Course) (err error) {
	bucketNo, err := S.GetBucketNo(c.CourseId)
	if err != nil {
		return
	}
	bucket, ovflIter, err := S.GetBucket(bucketNo)
	if err != nil {
		return
	}

	// A never used or removed head is taken directly, its chain (if any) stays linked behind it
	if bucket.Record.State != model.RecordOccupied {
		bucket.Record.State = model.RecordOccupied
		bucket.Record.BucketNo = bucketNo
		bucket.Record.Course = c.Copy()
		S.heads[bucketNo] = bucket.Record
		return
	}

	// Walk to the last record of the chain
	last := bucket.Record
	for ovflIter.HasNext() {
		last, err = ovflIter.Next()
		if err != nil {
			err = fmt.Errorf("error while appending record to overflow: %s", err)
			return
		}
	}

	address := S.newOverflowRecord(bucketNo, c.Copy())
	last.NextOverflow = address
	if last.IsOverflow {
		S.overflow[last.RecordAddress] = last
	} else {
		S.heads[bucketNo] = last
	}

	return
}

// Delete - Removes exactly the given record from its bucket.
// A head record without overflow is reset to empty. A head record with overflow is marked deleted so that the
// chain behind it stays reachable. An overflow record is unlinked from the chain and its handle is recycled.
//   - record is the model.Record to delete, and it must contain IsOverflow, BucketNo and RecordAddress as returned by Get or GetBucket
//
// It returns:
//   - err is a standard error, if something went wrong
func (S *SCTable) Delete(record model.Record) (err error) {
	if record.BucketNo < 0 || record.BucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("record has a bucket number outside permitted range")
		return
	}

	if record.IsOverflow {
		err = S.unlinkOverflowRecord(record)
		if err != nil {
			err = fmt.Errorf("error while deleting record in overflow: %s", err)
		}
		return
	}

	head := S.heads[record.BucketNo]
	if head.State != model.RecordOccupied || head.Course.CourseId != record.Course.CourseId {
		err = fmt.Errorf("bucket %d has no record in use matching %s", record.BucketNo, record.Course.CourseId)
		return
	}

	if head.NextOverflow == conf.NoOverflow {
		S.heads[record.BucketNo] = emptyHead(record.BucketNo)
	} else {
		head.State = model.RecordDeleted
		head.Course = course.Course{}
		S.heads[record.BucketNo] = head
	}

	return
}
