package quicksort

import (
	"github.com/gostonefire/coursecatalog/course"
)

// SortCourses - Sorts all courses in place in ascending course id order. The sort is not stable.
func SortCourses(courses []course.Course) {
	Sort(courses, 0, len(courses)-1)
}

// Sort - Sorts the inclusive range courses[begin:end+1] in place in ascending course id order.
// A range of zero or one course is already sorted.
func Sort(courses []course.Course, begin, end int) {
	if begin >= end {
		return
	}

	split := Partition(courses, begin, end)

	// The split index belongs to the low part given how Partition picks it
	Sort(courses, begin, split)
	Sort(courses, split+1, end)
}

// Partition - Partitions the inclusive range courses[begin:end+1] around the course id of its middle element.
// On return every course in [begin, split] has an id not above the pivot and every course in [split+1, end]
// has an id not below it.
//
// It returns:
//   - split is the last index of the low part
func Partition(courses []course.Course, begin, end int) (split int) {
	low := begin
	high := end

	// Pivot is a copy, later swaps do not move it
	pivot := courses[low+(high-low)/2].CourseId

	for {
		for courses[low].CourseId < pivot {
			low++
		}
		for pivot < courses[high].CourseId {
			high--
		}

		if low >= high {
			split = high
			return
		}

		courses[low], courses[high] = courses[high], courses[low]
		low++
		high--
	}
}
