package separatechaining

import (
	"fmt"
	"github.com/gostonefire/coursecatalog/course"
	"github.com/gostonefire/coursecatalog/internal/conf"
	"github.com/gostonefire/coursecatalog/internal/model"
)

// emptyHead - Returns a never used head record for the given bucket
func emptyHead(bucketNo int64) model.Record {
	return model.Record{
		State:         model.RecordEmpty,
		BucketNo:      conf.NoKey,
		RecordAddress: bucketNo,
		NextOverflow:  conf.NoOverflow,
	}
}

// getBucket - Returns the bucket for the given bucket number
func (S *SCTable) getBucket(bucketNo int64) (bucket model.Bucket, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("bucket number %d outside permitted range", bucketNo)
		return
	}

	head := S.heads[bucketNo]
	bucket = model.Bucket{
		Record:          head,
		BucketNo:        bucketNo,
		OverflowAddress: head.NextOverflow,
	}

	return
}

// getOverflowRecord - Returns the overflow record at the given arena handle
func (S *SCTable) getOverflowRecord(address int64) (record model.Record, err error) {
	if address <= conf.NoOverflow || address >= int64(len(S.overflow)) {
		err = fmt.Errorf("overflow address %d outside arena", address)
		return
	}

	record = S.overflow[address]
	if record.State != model.RecordOccupied {
		err = fmt.Errorf("overflow address %d is not in use", address)
	}

	return
}

// newOverflowRecord - Stores a course in the overflow arena and returns its handle.
// Handles released by earlier deletes are reused before the arena grows.
func (S *SCTable) newOverflowRecord(bucketNo int64, c course.Course) (address int64) {
	if n := len(S.free); n > 0 {
		address = S.free[n-1]
		S.free = S.free[:n-1]
	} else {
		address = int64(len(S.overflow))
		S.overflow = append(S.overflow, model.Record{})
	}

	S.overflow[address] = model.Record{
		State:         model.RecordOccupied,
		IsOverflow:    true,
		BucketNo:      bucketNo,
		RecordAddress: address,
		NextOverflow:  conf.NoOverflow,
		Course:        c,
	}

	return
}

// unlinkOverflowRecord - Takes an overflow record out of its bucket chain and releases its handle
func (S *SCTable) unlinkOverflowRecord(record model.Record) (err error) {
	stored, err := S.getOverflowRecord(record.RecordAddress)
	if err != nil {
		return
	}
	if stored.BucketNo != record.BucketNo {
		err = fmt.Errorf("overflow address %d does not belong to bucket %d", record.RecordAddress, record.BucketNo)
		return
	}

	head := S.heads[record.BucketNo]
	if head.NextOverflow == record.RecordAddress {
		head.NextOverflow = stored.NextOverflow
		// A deleted head only lives on to keep the chain reachable
		if head.State == model.RecordDeleted && head.NextOverflow == conf.NoOverflow {
			head = emptyHead(record.BucketNo)
		}
		S.heads[record.BucketNo] = head
	} else {
		address := head.NextOverflow
		for {
			if address == conf.NoOverflow {
				err = fmt.Errorf("overflow address %d not linked from bucket %d", record.RecordAddress, record.BucketNo)
				return
			}
			prev := S.overflow[address]
			if prev.NextOverflow == record.RecordAddress {
				prev.NextOverflow = stored.NextOverflow
				S.overflow[address] = prev
				break
			}
			address = prev.NextOverflow
		}
	}

	S.overflow[record.RecordAddress] = model.Record{}
	S.free = append(S.free, record.RecordAddress)

	return
}
