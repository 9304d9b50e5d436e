package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gostonefire/coursecatalog"
	"github.com/gostonefire/coursecatalog/catalogerrors"
	"github.com/gostonefire/coursecatalog/internal/loader"
	"github.com/gostonefire/coursecatalog/internal/utils"
	"github.com/rs/zerolog"
)

// Menu choices
const (
	ChoiceLoad        = 1
	ChoicePrintList   = 2
	ChoicePrintCourse = 3
	ChoiceExit        = 9
)

// Options - Settings for a console session
//   - DataFile is the course file loaded by the load choice
//   - TableSize is the number of buckets for every catalog created by the load choice
type Options struct {
	DataFile  string
	TableSize int64
}

// Console - An interactive menu session working on one course catalog at a time
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	log     zerolog.Logger
	options Options
	catalog *coursecatalog.CourseCatalog
}

// New - Returns a new Console reading white space separated tokens from in and writing to out
func New(in io.Reader, out io.Writer, options Options, log zerolog.Logger) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Console{
		in:      scanner,
		out:     out,
		log:     log,
		options: options,
	}
}

// Run - Shows the menu and serves choices until exit is chosen or input ends
func (C *Console) Run() (err error) {
	for {
		renderMenu(C.out)

		token, ok := C.next()
		if !ok {
			break
		}

		choice, convErr := strconv.Atoi(token)
		if convErr != nil {
			fmt.Fprintf(C.out, "%s is not a valid option.\n\n", token)
			continue
		}

		if choice == ChoiceExit {
			break
		}

		switch choice {
		case ChoiceLoad:
			err = C.load()
		case ChoicePrintList:
			err = C.printList()
		case ChoicePrintCourse:
			err = C.printCourse()
		default:
			fmt.Fprintf(C.out, "%d is not a valid option.\n\n", choice)
		}
		if err != nil {
			return
		}
	}

	fmt.Fprintln(C.out, "Good bye.")

	return C.in.Err()
}

// next - Returns the next input token, ok is false when input has ended
func (C *Console) next() (token string, ok bool) {
	if !C.in.Scan() {
		return "", false
	}
	return C.in.Text(), true
}

// load - Creates a new catalog, loads the data file into it and validates prerequisites.
// A failing load leaves any earlier catalog in place.
func (C *Console) load() (err error) {
	catalog, info, err := coursecatalog.NewCourseCatalog(C.options.TableSize, nil)
	if err != nil {
		return
	}
	C.log.Debug().Int64("buckets", info.NumberOfBuckets).Msg("course catalog created")

	stat, loadErr := loader.LoadFile(C.options.DataFile, catalog, C.log)
	if loadErr != nil {
		C.log.Error().Err(loadErr).Str("file", C.options.DataFile).Msg("loading courses failed")
		fmt.Fprintf(C.out, "\nERROR: Could not load %s: %s\n\n", C.options.DataFile, loadErr)
		return
	}
	for _, invalid := range stat.Rejected {
		printInvalidRecord(C.out, invalid)
	}

	removed, err := catalog.Validate(func(event coursecatalog.InvalidPrerequisite) {
		C.log.Warn().
			Str("course_id", event.Course.CourseId).
			Str("prerequisite_id", event.PrerequisiteId).
			Msg("course removed, prerequisite does not exist")
		printInvalidPrerequisite(C.out, event)
	})
	if err != nil {
		return
	}

	C.log.Info().Int("inserted", stat.Inserted).Int64("removed", removed).Msg("course catalog ready")
	C.catalog = catalog

	return
}

// printList - Prints every course sorted by id
func (C *Console) printList() (err error) {
	if !C.isLoaded() {
		return
	}

	courses, err := C.catalog.ListAllSorted()
	if err != nil {
		return
	}

	printCourseList(C.out, courses)

	return
}

// printCourse - Asks for a course id and prints that course
func (C *Console) printCourse() (err error) {
	if !C.isLoaded() {
		return
	}

	fmt.Fprint(C.out, "Which course do you want to know about? ")
	token, ok := C.next()
	if !ok {
		fmt.Fprintln(C.out)
		return
	}

	c, err := C.catalog.Search(utils.NormalizeId(token))
	if errors.Is(err, catalogerrors.NoRecordFound{}) {
		fmt.Fprintln(C.out, "Course not found.")
		return nil
	}
	if err != nil {
		return
	}

	printCourse(C.out, c)

	return
}

// isLoaded - Returns true if a catalog has been loaded, otherwise it tells the user to load one
func (C *Console) isLoaded() bool {
	if C.catalog == nil {
		fmt.Fprint(C.out, "\n\nERROR: Please load the data from file\n\n\n")
		return false
	}
	return true
}
