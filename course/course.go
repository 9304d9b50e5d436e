package course

// Course - Represents one course in the catalog
//   - CourseId is the identifier of the course, by convention upper case
//   - Title is the human readable name of the course
//   - Prerequisites is the ordered list of course ids that has to be taken before this one
type Course struct {
	CourseId      string
	Title         string
	Prerequisites []string
}

// IsEmpty - Returns true if the course has neither id nor title
func (C Course) IsEmpty() bool {
	return C.CourseId == "" && C.Title == ""
}

// Copy - Returns a copy of the course that shares no memory with the original
func (C Course) Copy() Course {
	c := Course{CourseId: C.CourseId, Title: C.Title}
	if C.Prerequisites != nil {
		c.Prerequisites = make([]string, len(C.Prerequisites))
		_ = copy(c.Prerequisites, C.Prerequisites)
	}

	return c
}

// HasPrerequisites - Returns true if the course lists at least one prerequisite
func (C Course) HasPrerequisites() bool {
	return len(C.Prerequisites) > 0
}
