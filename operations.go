package coursecatalog

import (
	"fmt"
	"github.com/gostonefire/coursecatalog/course"
	"github.com/gostonefire/coursecatalog/internal/model"
	"github.com/gostonefire/coursecatalog/internal/quicksort"
)

// Insert - Adds a course to the catalog. Courses with an id already in the catalog are added as well, a later
// Search will return the one inserted first.
//   - c is the course to insert, it is copied into the catalog
//
// It returns:
//   - err is a standard error, it can only happen if a custom hash algorithm returns a bucket outside the table
func (C *CourseCatalog) Insert(c course.Course) (err error) {
	err = C.tableManagement.Set(c)
	if err != nil {
		err = fmt.Errorf("error while inserting course %s: %s", c.CourseId, err)
	}

	return
}

// Search - Returns the course with the given id.
//   - courseId is the identifier of the course, matching is exact so any case normalization is up to the caller
//
// It returns:
//   - c is a copy of the matching course if found
//   - err is either of type catalogerrors.NoRecordFound or a standard error, if something went wrong
func (C *CourseCatalog) Search(courseId string) (c course.Course, err error) {
	record, err := C.tableManagement.Get(courseId)
	if err != nil {
		return
	}

	c = record.Course.Copy()

	return
}

// Remove - Removes the course with the given id, if several courses share the id only the one Search would return
// is removed. Other courses in the same bucket are left untouched.
//   - courseId is the identifier of the course
//
// It returns:
//   - err is either of type catalogerrors.NoRecordFound or a standard error, if something went wrong
func (C *CourseCatalog) Remove(courseId string) (err error) {
	record, err := C.tableManagement.Get(courseId)
	if err != nil {
		return
	}

	err = C.tableManagement.Delete(record)

	return
}

// ListAllSorted - Returns every course in the catalog ordered by course id.
// Courses sharing an id may come in any order among themselves.
func (C *CourseCatalog) ListAllSorted() (courses []course.Course, err error) {
	records, err := C.records()
	if err != nil {
		return
	}

	courses = make([]course.Course, len(records))
	for i, record := range records {
		courses[i] = record.Course.Copy()
	}

	quicksort.SortCourses(courses)

	return
}

// Stat - Walks through the entire set of buckets and produce a CatalogStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of courses per bucket, false will set CatalogStat.BucketDistribution to nil.
func (C *CourseCatalog) Stat(includeDistribution bool) (catalogStat *CatalogStat, err error) {
	var cs CatalogStat

	if includeDistribution {
		cs.BucketDistribution = make([]int64, C.numberOfBuckets)
	}

	for i := int64(0); i < C.numberOfBuckets; i++ {
		var bucketRecords []model.Record
		bucketRecords, err = C.bucketRecords(i)
		if err != nil {
			return
		}

		for _, record := range bucketRecords {
			cs.Records++
			if record.IsOverflow {
				cs.OverflowRecords++
			} else {
				cs.HeadRecords++
			}
			if includeDistribution {
				cs.BucketDistribution[i]++
			}
		}
	}

	cs.FreeOverflowRecords = C.tableManagement.GetStorageParameters().OverflowFree

	catalogStat = &cs
	return
}

// GetBucketNo - Returns which bucket number that the given course id results in
//   - courseId is the identifier of a course
func (C *CourseCatalog) GetBucketNo(courseId string) (bucketNo int64, err error) {
	return C.tableManagement.GetBucketNo(courseId)
}

// records - Returns all records in use, bucket by bucket in ascending bucket order, and within a bucket the head
// first followed by the overflow chain in link order.
func (C *CourseCatalog) records() (records []model.Record, err error) {
	var bucketRecords []model.Record
	for i := int64(0); i < C.numberOfBuckets; i++ {
		bucketRecords, err = C.bucketRecords(i)
		if err != nil {
			return
		}
		records = append(records, bucketRecords...)
	}

	return
}

// bucketRecords - Returns the records in use for one bucket, head first followed by the overflow chain
func (C *CourseCatalog) bucketRecords(bucketNo int64) (records []model.Record, err error) {
	bucket, iter, err := C.tableManagement.GetBucket(bucketNo)
	if err != nil {
		return
	}

	if bucket.Record.State == model.RecordOccupied {
		records = append(records, bucket.Record)
	}

	var record model.Record
	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			return
		}
		if record.State == model.RecordOccupied {
			records = append(records, record)
		}
	}

	return
}
