package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/csyeteam03/trace-console/internal/client/models"
)

// ListCourses fetches and prints all courses, resolving instructor and
// department names for display. Lookup misses render as "unknown"; the client
// assumes referential integrity but does not depend on it.
func (a *App) ListCourses(ctx context.Context) error {
	var (
		courses     []models.Course
		instructors []models.Instructor
		departments []models.Department
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { courses, err = a.courses.List(gctx); return })
	g.Go(func() (err error) { instructors, err = a.instructors.List(gctx); return })
	g.Go(func() (err error) { departments, err = a.lookups.Departments(gctx); return })
	if err := g.Wait(); err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	if len(courses) == 0 {
		fmt.Println("No courses yet")
		return nil
	}

	instructorNames := make(map[string]string, len(instructors))
	for _, in := range instructors {
		instructorNames[in.InstructorID] = in.Name
	}
	departmentNames := make(map[int]string, len(departments))
	for _, d := range departments {
		departmentNames[d.DepartmentID] = d.Name
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tINSTRUCTOR\tDEPARTMENT\tCREDITS")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			c.CourseID, c.Code, c.Name,
			nameOr(instructorNames[c.InstructorID]),
			nameOr(departmentNames[c.DepartmentID]),
			c.CreditHours)
	}
	return w.Flush()
}

func nameOr(name string) string {
	if name == "" {
		return "unknown"
	}
	return name
}

// ShowCourse prints one course in full, plus its trace surveys.
func (a *App) ShowCourse(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, 0, "Enter course id")
	if err != nil {
		return err
	}

	course, err := a.courses.Get(ctx, id)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	fmt.Printf("%s %s (%d credit hours)\n", course.Code, course.Name, course.CreditHours)
	if course.Description != "" {
		fmt.Println(course.Description)
	}
	fmt.Printf("instructor: %s  department: %d\n", course.InstructorID, course.DepartmentID)
	fmt.Printf("added: %s  updated: %s\n", course.DateAdded, course.DateLastUpdated)

	traces, err := a.traces.ListByCourse(ctx, id)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}
	if len(traces) == 0 {
		fmt.Println("No trace surveys uploaded")
		return nil
	}
	fmt.Println("Trace surveys:")
	for _, tr := range traces {
		fmt.Printf("  %s  %s  %s %s\n", tr.TraceID, tr.FileName, tr.SemesterTerm, tr.Section)
	}
	return nil
}

// courseForm collects the course fields, offering lookups as choices. The
// instructor and department lists are fetched in parallel; if either fetch
// fails the form is abandoned.
func (a *App) courseForm(ctx context.Context, current *models.Course) (*models.CourseRequest, error) {
	var (
		instructors []models.Instructor
		departments []models.Department
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { instructors, err = a.instructors.List(gctx); return })
	g.Go(func() (err error) { departments, err = a.lookups.Departments(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Failed to load instructors or departments. Please try again.")
	}

	if len(instructors) == 0 {
		return nil, fmt.Errorf("No instructors available. Please add an instructor first.")
	}
	if len(departments) == 0 {
		return nil, fmt.Errorf("No departments available.")
	}

	req := models.CourseRequest{CreditHours: 3, DepartmentID: departments[0].DepartmentID}
	if current != nil {
		req = models.CourseRequest{
			Code:         current.Code,
			Name:         current.Name,
			Description:  current.Description,
			InstructorID: current.InstructorID,
			DepartmentID: current.DepartmentID,
			CreditHours:  current.CreditHours,
		}
	}

	var err error
	if req.Code, err = GetTextDefault(a.reader, "Course code", req.Code, os.Stdout); err != nil {
		return nil, err
	}
	if req.Code == "" {
		return nil, fmt.Errorf("Course code is required")
	}

	if req.Name, err = GetTextDefault(a.reader, "Course name", req.Name, os.Stdout); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("Course name is required")
	}

	if req.Description, err = GetTextDefault(a.reader, "Description", req.Description, os.Stdout); err != nil {
		return nil, err
	}

	fmt.Println("Instructors:")
	for _, in := range instructors {
		fmt.Printf("  %s  %s\n", in.InstructorID, in.Name)
	}
	if req.InstructorID, err = GetTextDefault(a.reader, "Instructor id", req.InstructorID, os.Stdout); err != nil {
		return nil, err
	}
	if req.InstructorID == "" {
		return nil, fmt.Errorf("Please select an instructor")
	}

	fmt.Println("Departments:")
	for _, d := range departments {
		fmt.Printf("  %d  %s\n", d.DepartmentID, d.Name)
	}
	depText, err := GetTextDefault(a.reader, "Department id", strconv.Itoa(req.DepartmentID), os.Stdout)
	if err != nil {
		return nil, err
	}
	if req.DepartmentID, err = strconv.Atoi(depText); err != nil {
		return nil, fmt.Errorf("Please select a department")
	}

	if req.CreditHours, err = GetInt(a.reader, "Credit hours", req.CreditHours, os.Stdout); err != nil {
		return nil, err
	}
	if req.CreditHours <= 0 {
		return nil, fmt.Errorf("Credit hours must be positive")
	}

	return &req, nil
}

// AddCourse runs the course form and creates the course.
func (a *App) AddCourse(ctx context.Context) error {
	req, err := a.courseForm(ctx, nil)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	created, err := a.courses.Create(ctx, *req)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Course %s created (%s)", created.Code, created.CourseID)
	return nil
}

// EditCourse runs the form prefilled with the current record and PUTs it.
func (a *App) EditCourse(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, 0, "Enter course id")
	if err != nil {
		return err
	}

	current, err := a.courses.Get(ctx, id)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	req, err := a.courseForm(ctx, current)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	if err := a.courses.Update(ctx, id, *req); err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Course %s updated", id)
	return nil
}

func (a *App) DeleteCourse(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, 0, "Enter course id to delete")
	if err != nil {
		return err
	}

	if err := a.courses.Delete(ctx, id); err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Course %s deleted", id)
	return nil
}
