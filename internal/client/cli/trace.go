package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/csyeteam03/trace-console/internal/client/api"
	"github.com/csyeteam03/trace-console/internal/client/docview"
	"github.com/csyeteam03/trace-console/internal/client/models"
	"github.com/csyeteam03/trace-console/internal/filex"
)

// ListTraces prints all trace surveys, or only a course's when a course id is
// given.
func (a *App) ListTraces(ctx context.Context, args []string) error {
	var (
		traces []models.Trace
		err    error
	)
	if len(args) > 0 {
		traces, err = a.traces.ListByCourse(ctx, args[0])
	} else {
		traces, err = a.traces.ListAll(ctx)
	}
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	if len(traces) == 0 {
		fmt.Println("No trace surveys yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TRACE\tCOURSE\tFILE\tSEMESTER\tSECTION\tCREATED")
	for _, tr := range traces {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tr.TraceID, tr.CourseID, tr.FileName, tr.SemesterTerm, tr.Section, tr.DateCreated)
	}
	return w.Flush()
}

// AddTrace uploads a new trace survey for a course. Instructors and semesters
// are fetched in parallel for the form; the file must be a PDF and is checked
// before anything goes on the wire.
func (a *App) AddTrace(ctx context.Context, args []string) error {
	courseID, err := a.argOrPrompt(args, 0, "Enter course id")
	if err != nil {
		return err
	}

	var (
		instructors []models.Instructor
		semesters   []models.SemesterTerm
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { instructors, err = a.instructors.List(gctx); return })
	g.Go(func() (err error) { semesters, err = a.lookups.Semesters(gctx); return })
	if err := g.Wait(); err != nil {
		a.notify.Show(noticeError, "Failed to load instructors or semesters. Please try again.")
		return err
	}

	fmt.Println("Instructors:")
	for _, in := range instructors {
		fmt.Printf("  %s  %s\n", in.InstructorID, in.Name)
	}
	instructorID, err := getSimpleText(a.reader, "Instructor id", os.Stdout)
	if err != nil {
		return err
	}
	if instructorID == "" {
		a.notify.Show(noticeError, "Please select an instructor")
		return nil
	}

	fmt.Println("Semester terms:")
	for _, s := range semesters {
		fmt.Printf("  %s  %s\n", s.SemesterTerm, s.Name)
	}
	semesterTerm, err := getSimpleText(a.reader, "Semester term", os.Stdout)
	if err != nil {
		return err
	}
	if semesterTerm == "" {
		a.notify.Show(noticeError, "Please select a semester term")
		return nil
	}

	section, err := getSimpleText(a.reader, "Section", os.Stdout)
	if err != nil {
		return err
	}
	if section == "" {
		a.notify.Show(noticeError, "Section is required")
		return nil
	}

	path, err := getSimpleText(a.reader, "Enter PDF file path", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		a.notify.Show(noticeError, "Please upload a PDF file")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.notify.Show(noticeError, "Cannot read file: %s", err.Error())
		return err
	}
	if !api.IsPDF(path, data) {
		a.notify.Show(noticeError, "%s", api.ErrNotPDF.Error())
		return api.ErrNotPDF
	}

	trace, err := a.traces.Create(ctx, courseID, models.TraceRequest{
		InstructorID: instructorID,
		SemesterTerm: semesterTerm,
		Section:      section,
		FileName:     filepath.Base(path),
		File:         data,
	})
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Trace uploaded successfully (%s)", trace.TraceID)
	return nil
}

// ShowTrace prints one trace survey record.
func (a *App) ShowTrace(ctx context.Context, args []string) error {
	courseID, traceID, err := a.traceIDs(args)
	if err != nil {
		return err
	}

	tr, err := a.traces.Get(ctx, courseID, traceID)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	fmt.Printf("%s  %s\n", tr.TraceID, tr.FileName)
	fmt.Printf("course: %s  instructor: %s\n", tr.CourseID, tr.InstructorID)
	fmt.Printf("semester: %s  section: %s\n", tr.SemesterTerm, tr.Section)
	fmt.Printf("created: %s\n", tr.DateCreated)
	return nil
}

func (a *App) DeleteTrace(ctx context.Context, args []string) error {
	courseID, traceID, err := a.traceIDs(args)
	if err != nil {
		return err
	}

	if err := a.traces.Delete(ctx, courseID, traceID); err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Trace %s deleted", traceID)
	return nil
}

// ViewPDF fetches the survey file and materializes it as a scoped document:
// the temp file exists while the user "has the viewer open" and is removed
// when they close it, mirroring a blob URL that is revoked on dialog close.
func (a *App) ViewPDF(ctx context.Context, args []string) error {
	courseID, traceID, err := a.traceIDs(args)
	if err != nil {
		return err
	}

	tr, err := a.traces.Get(ctx, courseID, traceID)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	data, mediaType, err := a.traces.FetchPDF(ctx, courseID, traceID)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	doc, err := docview.Open(tr.FileName, mediaType, data)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}
	defer doc.Close()

	fmt.Printf("Opened %s (%s) at %s\n", tr.FileName, doc.MediaType, doc.Path)
	if _, err := getSimpleText(a.reader, "Press Enter to close the viewer", os.Stdout); err != nil {
		return err
	}
	return nil
}

// DownloadPDF fetches the survey file into the download directory.
func (a *App) DownloadPDF(ctx context.Context, args []string) error {
	courseID, traceID, err := a.traceIDs(args)
	if err != nil {
		return err
	}

	tr, err := a.traces.Get(ctx, courseID, traceID)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	data, mediaType, err := a.traces.FetchPDF(ctx, courseID, traceID)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	doc, err := docview.Open(tr.FileName, mediaType, data)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}
	defer doc.Close()

	dir, err := filex.EnsureSubDir(a.config.DownloadDir)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	name := tr.FileName
	if name == "" {
		name = "trace-survey.pdf"
	}
	dst, err := doc.SaveTo(dir, name)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "File saved to %s", dst)
	return nil
}

func (a *App) traceIDs(args []string) (courseID, traceID string, err error) {
	if courseID, err = a.argOrPrompt(args, 0, "Enter course id"); err != nil {
		return "", "", err
	}
	if traceID, err = a.argOrPrompt(args, 1, "Enter trace id"); err != nil {
		return "", "", err
	}
	return courseID, traceID, nil
}
