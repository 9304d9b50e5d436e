package catalogerrors

import "fmt"

// NoRecordFound - Custom error to inform that no course record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// InvalidRecord - Custom error to inform that a raw input record could not be turned into a course
type InvalidRecord struct {
	Line   int
	Fields int
	msg    string
}

// NewInvalidRecord - Returns an InvalidRecord error for the given input line and number of fields found
func NewInvalidRecord(line, fields int) InvalidRecord {
	return InvalidRecord{
		Line:   line,
		Fields: fields,
		msg:    fmt.Sprintf("invalid record on line %d: got %d field(s), need at least id and title", line, fields),
	}
}

// Error - Used to notify that an input record is invalid
func (E InvalidRecord) Error() string {
	if E.msg == "" {
		return "invalid record"
	}
	return E.msg
}

// Is - Matches any InvalidRecord regardless of line and message
func (E InvalidRecord) Is(target error) bool {
	_, ok := target.(InvalidRecord)
	return ok
}
