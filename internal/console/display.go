package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/gostonefire/coursecatalog"
	"github.com/gostonefire/coursecatalog/catalogerrors"
	"github.com/gostonefire/coursecatalog/course"
)

func renderMenu(w io.Writer) {
	fmt.Fprint(w, "Welcome to the course planner\n\n")
	fmt.Fprintf(w, "%d. Load Data Structure.\n", ChoiceLoad)
	fmt.Fprintf(w, "%d. Print Course List.\n", ChoicePrintList)
	fmt.Fprintf(w, "%d. Print Course.\n", ChoicePrintCourse)
	fmt.Fprintf(w, "%d. Exit\n", ChoiceExit)
	fmt.Fprint(w, "\nWhat would you like to do ?\n")
}

func printCourseList(w io.Writer, courses []course.Course) {
	for _, c := range courses {
		fmt.Fprintf(w, "%s: %s\n", c.CourseId, c.Title)
	}
	fmt.Fprintln(w)
}

func printCourse(w io.Writer, c course.Course) {
	fmt.Fprintf(w, "%s: %s\n", c.CourseId, c.Title)
	fmt.Fprintf(w, "Prerequisites: %s\n\n", strings.Join(c.Prerequisites, ", "))
}

func printInvalidPrerequisite(w io.Writer, event coursecatalog.InvalidPrerequisite) {
	fmt.Fprint(w, "\nThe following course has invalid prerequisites: \n")
	fmt.Fprintf(w, "%s %s\n", event.Course.CourseId, event.Course.Title)
	fmt.Fprintf(w, "%s does not exist \n", event.PrerequisiteId)
	fmt.Fprint(w, "It will not be added. Please review the data and try again\n\n")
}

func printInvalidRecord(w io.Writer, invalid catalogerrors.InvalidRecord) {
	fmt.Fprintf(w, "\nInvalid Data: line %d\n", invalid.Line)
	fmt.Fprint(w, "Please review the data and try again.\n\n")
}
