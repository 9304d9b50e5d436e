package coursecatalog

import (
	"errors"
	"fmt"
	"github.com/gostonefire/coursecatalog/catalogerrors"
	"github.com/gostonefire/coursecatalog/internal/model"
)

// Validate - Makes one forward pass over the catalog, bucket by bucket, and removes every course that has a
// prerequisite not found in the catalog. Checking of a course stops at its first missing prerequisite.
// Courses removed during the pass count as missing for courses checked after them, but courses already checked
// are not checked again.
//   - notify is called once for each removed course, it may be nil
//
// It returns:
//   - removed is the number of courses removed
//   - err is a standard error, if something went wrong
func (C *CourseCatalog) Validate(notify Notifier) (removed int64, err error) {
	var bucketRecords []model.Record
	for i := int64(0); i < C.numberOfBuckets; i++ {
		// Record addresses are stable under Delete of other records, so a snapshot of the bucket is safe to walk
		bucketRecords, err = C.bucketRecords(i)
		if err != nil {
			return
		}

		for _, record := range bucketRecords {
			if !record.Course.HasPrerequisites() {
				continue
			}

			var missing string
			var isMissing bool
			missing, isMissing, err = C.missingPrerequisite(record)
			if err != nil {
				return
			}
			if !isMissing {
				continue
			}

			if notify != nil {
				notify(InvalidPrerequisite{Course: record.Course.Copy(), PrerequisiteId: missing})
			}

			err = C.tableManagement.Delete(record)
			if err != nil {
				err = fmt.Errorf("error while removing course %s: %s", record.Course.CourseId, err)
				return
			}
			removed++
		}
	}

	return
}

// missingPrerequisite - Returns the first prerequisite of the record's course that is not in the catalog.
// isMissing is false if all prerequisites are there.
func (C *CourseCatalog) missingPrerequisite(record model.Record) (prerequisiteId string, isMissing bool, err error) {
	for _, id := range record.Course.Prerequisites {
		_, err = C.tableManagement.Get(id)
		if errors.Is(err, catalogerrors.NoRecordFound{}) {
			prerequisiteId = id
			isMissing = true
			err = nil
			return
		}
		if err != nil {
			return
		}
	}

	return
}
