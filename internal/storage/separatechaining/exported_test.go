//go:build unit

package separatechaining

import (
	"fmt"
	"github.com/gostonefire/coursecatalog/catalogerrors"
	"github.com/gostonefire/coursecatalog/course"
	"github.com/gostonefire/coursecatalog/internal/conf"
	"github.com/gostonefire/coursecatalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// fixedHashAlgorithm - Sends every key to the same bucket
type fixedHashAlgorithm struct {
	tableSize int64
	bucketNo  int64
}

func (F *fixedHashAlgorithm) SetTableSize(tableSize int64) { F.tableSize = tableSize }
func (F *fixedHashAlgorithm) HashFunc1(_ []byte) int64 { return F.bucketNo }
func (F *fixedHashAlgorithm) GetTableSize() int64 { return F.tableSize }

func newCollidingTable(t *testing.T, ids ...string) *SCTable {
	scTable, err := NewSCTable(model.TableConf{NumberOfBuckets: 4, HashAlgorithm: &fixedHashAlgorithm{bucketNo: 2}})
	require.NoError(t, err, "create new SCTable instance")

	for _, id := range ids {
		err = scTable.Set(course.Course{CourseId: id, Title: "Title of " + id})
		require.NoErrorf(t, err, "sets %s", id)
	}

	return scTable
}

func chainIds(t *testing.T, scTable *SCTable, bucketNo int64) (ids []string) {
	bucket, iter, err := scTable.GetBucket(bucketNo)
	require.NoError(t, err, "gets bucket")
	if bucket.Record.State == model.RecordOccupied {
		ids = append(ids, bucket.Record.Course.CourseId)
	}
	for iter.HasNext() {
		record, err := iter.Next()
		require.NoError(t, err, "next returns record")
		ids = append(ids, record.Course.CourseId)
	}
	return
}

func TestNewSCTable(t *testing.T) {
	t.Run("creates a new SCTable instance", func(t *testing.T) {
		// Execute
		scTable, err := NewSCTable(model.TableConf{NumberOfBuckets: 10})

		// Check
		assert.NoError(t, err, "create new SCTable instance")
		assert.Equal(t, int64(10), scTable.numberOfBuckets, "number of buckets preserved")
		assert.Len(t, scTable.heads, 10, "all heads allocated")
		assert.NotNil(t, scTable.hashAlgorithm, "hash algorithm is assigned")
		for i, head := range scTable.heads {
			assert.Equalf(t, model.RecordEmpty, head.State, "head #%d empty", i)
			assert.Equalf(t, conf.NoKey, head.BucketNo, "head #%d carries no key", i)
		}
	})

	t.Run("rejects non positive number of buckets", func(t *testing.T) {
		// Execute
		_, err := NewSCTable(model.TableConf{NumberOfBuckets: 0})

		// Check
		assert.Error(t, err, "zero buckets rejected")
	})
}

func TestSCTable_GetStorageParameters(t *testing.T) {
	t.Run("gets storage parameters", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t, "A", "B", "C")

		// Execute
		sp := scTable.GetStorageParameters()

		// Check
		assert.Equal(t, int64(4), sp.NumberOfBuckets, "number of buckets preserved")
		assert.Equal(t, int64(2), sp.OverflowCapacity, "two overflow records allocated")
		assert.Zero(t, sp.OverflowFree, "no free overflow records")
		assert.False(t, sp.InternalAlgorithm, "indicates using custom hash algorithm")
	})
}

func TestSCTable_GetBucketNo(t *testing.T) {
	t.Run("rejects bucket number outside range from custom algorithm", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(model.TableConf{NumberOfBuckets: 4, HashAlgorithm: &fixedHashAlgorithm{bucketNo: 9}})
		require.NoError(t, err, "create new SCTable instance")

		// Execute
		_, err = scTable.GetBucketNo("CSCI100")

		// Check
		assert.Error(t, err, "out of range bucket rejected")
		assert.Error(t, scTable.Set(course.Course{CourseId: "CSCI100"}), "set fails as well")
	})
}

func TestSCTable_Set(t *testing.T) {
	t.Run("sets first record in bucket head", func(t *testing.T) {
		// Execute
		scTable := newCollidingTable(t, "A")

		// Check
		head := scTable.heads[2]
		assert.Equal(t, model.RecordOccupied, head.State, "head in use")
		assert.Equal(t, int64(2), head.BucketNo, "head carries its bucket number")
		assert.Equal(t, conf.NoOverflow, head.NextOverflow, "no overflow")
	})

	t.Run("appends colliding records in insertion order", func(t *testing.T) {
		// Execute
		scTable := newCollidingTable(t, "A", "B", "C", "D")

		// Check
		assert.Equal(t, []string{"A", "B", "C", "D"}, chainIds(t, scTable, 2), "chain order is insertion order")
	})

	t.Run("copies prerequisites on the way in", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t)
		prereqs := []string{"A"}

		// Execute
		err := scTable.Set(course.Course{CourseId: "B", Title: "B", Prerequisites: prereqs})
		prereqs[0] = "Z"

		// Check
		assert.NoError(t, err, "sets record")
		record, err := scTable.Get("B")
		assert.NoError(t, err, "gets record")
		assert.Equal(t, []string{"A"}, record.Course.Prerequisites, "stored copy untouched")
	})
}

func TestSCTable_Get(t *testing.T) {
	t.Run("gets records from head and overflow", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t, "A", "B", "C")

		// Execute
		head, errHead := scTable.Get("A")
		ovfl, errOvfl := scTable.Get("C")

		// Check
		assert.NoError(t, errHead, "gets head record")
		assert.False(t, head.IsOverflow, "head record not marked as overflow")
		assert.NoError(t, errOvfl, "gets overflow record")
		assert.True(t, ovfl.IsOverflow, "overflow record marked as overflow")
		assert.NotZero(t, ovfl.RecordAddress, "has valid record address")
		assert.Equal(t, "Title of C", ovfl.Course.Title, "course preserved")
	})

	t.Run("returns first match for duplicate ids", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t, "A")
		require.NoError(t, scTable.Set(course.Course{CourseId: "A", Title: "second"}), "sets duplicate")

		// Execute
		record, err := scTable.Get("A")

		// Check
		assert.NoError(t, err, "gets record")
		assert.Equal(t, "Title of A", record.Course.Title, "first in chain order returned")
	})

	t.Run("is case sensitive", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(model.TableConf{NumberOfBuckets: 10})
		require.NoError(t, err, "create new SCTable instance")
		require.NoError(t, scTable.Set(course.Course{CourseId: "CSCI100", Title: "Intro"}), "sets record")

		// Execute
		_, err = scTable.Get("csci100")

		// Check
		assert.ErrorIs(t, err, catalogerrors.NoRecordFound{}, "lower case id not found")
	})
}

func TestSCTable_Delete(t *testing.T) {
	t.Run("deletes a lone head record", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t, "A")
		record, err := scTable.Get("A")
		require.NoError(t, err, "gets record")

		// Execute
		err = scTable.Delete(record)

		// Check
		assert.NoError(t, err, "deletes record")
		assert.Equal(t, model.RecordEmpty, scTable.heads[2].State, "head empty again")
		assert.Equal(t, conf.NoKey, scTable.heads[2].BucketNo, "head carries no key")
		_, err = scTable.Get("A")
		assert.ErrorIs(t, err, catalogerrors.NoRecordFound{}, "returns correct error")
	})

	t.Run("keeps chain reachable when head is deleted", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t, "A", "B", "C")
		record, err := scTable.Get("A")
		require.NoError(t, err, "gets record")

		// Execute
		err = scTable.Delete(record)

		// Check
		assert.NoError(t, err, "deletes record")
		assert.Equal(t, model.RecordDeleted, scTable.heads[2].State, "head marked deleted")
		assert.Equal(t, []string{"B", "C"}, chainIds(t, scTable, 2), "chain survives")

		err = scTable.Set(course.Course{CourseId: "D"})
		assert.NoError(t, err, "sets record")
		assert.Equal(t, []string{"D", "B", "C"}, chainIds(t, scTable, 2), "deleted head reused")
	})

	t.Run("unlinks exactly the matching overflow record", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t, "A", "B", "C", "D")
		record, err := scTable.Get("C")
		require.NoError(t, err, "gets record")

		// Execute
		err = scTable.Delete(record)

		// Check
		assert.NoError(t, err, "deletes record")
		assert.Equal(t, []string{"A", "B", "D"}, chainIds(t, scTable, 2), "other records untouched")
		assert.Equal(t, int64(1), scTable.GetStorageParameters().OverflowFree, "handle released")
	})

	t.Run("reuses released overflow handles", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t, "A", "B", "C")
		record, err := scTable.Get("B")
		require.NoError(t, err, "gets record")
		require.NoError(t, scTable.Delete(record), "deletes record")

		// Execute
		err = scTable.Set(course.Course{CourseId: "E"})

		// Check
		assert.NoError(t, err, "sets record")
		sp := scTable.GetStorageParameters()
		assert.Equal(t, int64(2), sp.OverflowCapacity, "arena did not grow")
		assert.Zero(t, sp.OverflowFree, "free handle consumed")
		assert.Equal(t, []string{"A", "C", "E"}, chainIds(t, scTable, 2), "new record appended last")
	})

	t.Run("resets deleted head once its chain is gone", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t, "A", "B")
		head, err := scTable.Get("A")
		require.NoError(t, err, "gets record")
		require.NoError(t, scTable.Delete(head), "deletes head")
		ovfl, err := scTable.Get("B")
		require.NoError(t, err, "gets record")

		// Execute
		err = scTable.Delete(ovfl)

		// Check
		assert.NoError(t, err, "deletes overflow record")
		assert.Equal(t, model.RecordEmpty, scTable.heads[2].State, "head empty again")
	})

	t.Run("rejects stale records", func(t *testing.T) {
		// Prepare
		scTable := newCollidingTable(t, "A", "B")
		record, err := scTable.Get("B")
		require.NoError(t, err, "gets record")
		require.NoError(t, scTable.Delete(record), "deletes record")

		// Execute
		err = scTable.Delete(record)

		// Check
		assert.Error(t, err, "second delete fails")
	})
}

func TestSCTable_Overflow(t *testing.T) {
	t.Run("uses overflow", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(model.TableConf{NumberOfBuckets: 10})
		require.NoError(t, err, "create new SCTable instance")

		// Execute
		for i := 0; i < 1000; i++ {
			err = scTable.Set(course.Course{CourseId: fmt.Sprintf("CSCI%04d", i), Title: fmt.Sprintf("Course %d", i)})
			assert.NoErrorf(t, err, "sets record #%d", i)
		}

		// Check
		var hadOverflow bool
		for i := 0; i < 1000; i++ {
			record, err := scTable.Get(fmt.Sprintf("CSCI%04d", i))
			assert.NoErrorf(t, err, "gets record #%d", i)
			assert.Equalf(t, fmt.Sprintf("Course %d", i), record.Course.Title, "title of record #%d is correct", i)
			if record.IsOverflow {
				hadOverflow = true
			}
		}
		assert.True(t, hadOverflow, "some record(s) is in overflow")
	})
}
