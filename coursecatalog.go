package coursecatalog

import (
	"fmt"
	"github.com/gostonefire/coursecatalog/course"
	"github.com/gostonefire/coursecatalog/hashfunc"
	"github.com/gostonefire/coursecatalog/internal/model"
	"github.com/gostonefire/coursecatalog/internal/overflow"
	"github.com/gostonefire/coursecatalog/internal/storage/separatechaining"
)

// TableManagement - Interface for any table storage implementation
type TableManagement interface {
	Get(courseId string) (record model.Record, err error)
	Set(c course.Course) (err error)
	Delete(record model.Record) (err error)
	GetBucket(bucketNo int64) (bucket model.Bucket, overflowIterator *overflow.Records, err error)
	GetBucketNo(courseId string) (bucketNo int64, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// CatalogInfo - Information structure containing some information about the catalog created
//   - NumberOfBuckets is the total number of buckets in the catalog, it never changes
//   - InternalAlgorithm is true if the internal hash algorithm is used
type CatalogInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// CatalogStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of courses stored
//   - HeadRecords is the number of courses stored directly in a bucket head
//   - OverflowRecords is the number of courses that has ended up in overflow chains
//   - FreeOverflowRecords is the number of released overflow records waiting to be reused
//   - BucketDistribution is the number of courses stored in each bucket
type CatalogStat struct {
	Records             int64
	HeadRecords         int64
	OverflowRecords     int64
	FreeOverflowRecords int64
	BucketDistribution  []int64
}

// InvalidPrerequisite - Is sent to a Notifier when Validate finds a course with a prerequisite that is not in the catalog
type InvalidPrerequisite struct {
	Course         course.Course
	PrerequisiteId string
}

// Notifier - Receives one InvalidPrerequisite per course removed by Validate
type Notifier func(event InvalidPrerequisite)

// CourseCatalog - The main implementation struct
type CourseCatalog struct {
	tableManagement TableManagement
	numberOfBuckets int64
}

// NewCourseCatalog - Returns a new, empty, course catalog with a fixed number of buckets.
//   - tableSize is the number of buckets to distribute courses over, it is fixed for the lifetime of the catalog
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - courseCatalog is a pointer to a CourseCatalog struct
//   - catalogInfo is a CatalogInfo struct containing some data regarding the catalog created.
//   - err is a normal go Error which should be nil if everything went ok
func NewCourseCatalog(tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (
	courseCatalog *CourseCatalog,
	catalogInfo CatalogInfo,
	err error,
) {
	// Check if tableSize is valid
	if tableSize <= 0 {
		err = fmt.Errorf("tableSize must be a positive value higher than 0 (zero)")
		return
	}

	var tm TableManagement
	tm, err = separatechaining.NewSCTable(model.TableConf{
		NumberOfBuckets: tableSize,
		HashAlgorithm:   hashAlgorithm,
	})
	if err != nil {
		return
	}

	sp := tm.GetStorageParameters()

	courseCatalog = &CourseCatalog{
		tableManagement: tm,
		numberOfBuckets: sp.NumberOfBuckets,
	}

	catalogInfo = CatalogInfo{
		NumberOfBuckets:   sp.NumberOfBuckets,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}
