package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gostonefire/coursecatalog/catalogerrors"
	"github.com/gostonefire/coursecatalog/course"
	"github.com/gostonefire/coursecatalog/internal/conf"
	"github.com/gostonefire/coursecatalog/internal/utils"
	"github.com/rs/zerolog"
)

// maxLineLength is the longest course record line accepted
const maxLineLength = 1024 * 1024

// Inserter - Anything courses can be bulk loaded into
type Inserter interface {
	Insert(c course.Course) error
}

// LoadStat - Outcome of a bulk load
//   - Lines is the number of input lines read
//   - Inserted is the number of courses handed to the Inserter
//   - Rejected holds one catalogerrors.InvalidRecord per line that lacked id or title
type LoadStat struct {
	Lines    int
	Inserted int
	Rejected []catalogerrors.InvalidRecord
}

// LoadFile - Opens the file at path and loads it, see Load
func LoadFile(path string, target Inserter, log zerolog.Logger) (stat LoadStat, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("failed to open course file: %w", err)
		return
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	return Load(file, target, log)
}

// Load - Reads comma separated course records, one per line, and inserts them into target.
// Field 1 is the course id, field 2 the title and any further fields are prerequisite ids. Lines are split on every
// comma, quotes are kept as literal text. Fields are trimmed and empty trailing fields ignored. Lines with fewer than
// an id and a title, blank lines included, are logged, counted as rejected and skipped.
func Load(r io.Reader, target Inserter, log zerolog.Logger) (stat LoadStat, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)

	for scanner.Scan() {
		stat.Lines++

		fields := utils.TrimFields(strings.Split(scanner.Text(), ","))
		if len(fields) < conf.MinRecordFields {
			invalid := catalogerrors.NewInvalidRecord(stat.Lines, len(fields))
			stat.Rejected = append(stat.Rejected, invalid)
			log.Warn().Err(invalid).Int("line", stat.Lines).Msg("skipping course record")
			continue
		}

		c := course.Course{CourseId: fields[0], Title: fields[1]}
		if len(fields) > conf.MinRecordFields {
			c.Prerequisites = append([]string(nil), fields[conf.MinRecordFields:]...)
		}

		if err = target.Insert(c); err != nil {
			return
		}
		stat.Inserted++
		log.Debug().Str("course_id", c.CourseId).Int("prerequisites", len(c.Prerequisites)).Msg("course loaded")
	}
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("failed to read course record after line %d: %w", stat.Lines, err)
		return
	}

	log.Info().Int("lines", stat.Lines).Int("inserted", stat.Inserted).Int("rejected", len(stat.Rejected)).Msg("course file loaded")

	return
}
