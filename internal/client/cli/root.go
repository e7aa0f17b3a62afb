package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := a.session.State()
	if s.User != nil && s.User.Username != "" {
		return fmt.Sprintf("(%s)", s.User.Username)
	}
	return ""
}

// Root runs the REPL until the user exits or stdin closes.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Trace Console (type 'help' for commands)")

	a.session.Init(ctx)
	if msg := a.session.State().Err; msg != "" {
		a.notify.Show(noticeError, "%s", msg)
	}
	a.notify.Flush(os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("trace %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "login":
			a.Login(ctx)
		case "signup":
			a.Signup(ctx)
		case "logout":
			a.Logout()
		case "whoami":
			a.WhoAmI()

		case "instructors":
			a.requireLogin(func() { a.ListInstructors(ctx) })
		case "addinstructor":
			a.requireLogin(func() { a.AddInstructor(ctx) })
		case "editinstructor":
			a.requireLogin(func() { a.EditInstructor(ctx, args) })
		case "delinstructor":
			a.requireLogin(func() { a.DeleteInstructor(ctx, args) })

		case "courses":
			a.requireLogin(func() { a.ListCourses(ctx) })
		case "showcourse":
			a.requireLogin(func() { a.ShowCourse(ctx, args) })
		case "addcourse":
			a.requireLogin(func() { a.AddCourse(ctx) })
		case "editcourse":
			a.requireLogin(func() { a.EditCourse(ctx, args) })
		case "delcourse":
			a.requireLogin(func() { a.DeleteCourse(ctx, args) })

		case "departments":
			a.requireLogin(func() { a.ListDepartments(ctx) })
		case "semesters":
			a.requireLogin(func() { a.ListSemesters(ctx) })

		case "traces":
			a.requireLogin(func() { a.ListTraces(ctx, args) })
		case "addtrace":
			a.requireLogin(func() { a.AddTrace(ctx, args) })
		case "showtrace":
			a.requireLogin(func() { a.ShowTrace(ctx, args) })
		case "deltrace":
			a.requireLogin(func() { a.DeleteTrace(ctx, args) })
		case "viewpdf":
			a.requireLogin(func() { a.ViewPDF(ctx, args) })
		case "downloadpdf":
			a.requireLogin(func() { a.DownloadPDF(ctx, args) })

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}

		a.notify.Flush(os.Stdout)
	}
}

func (a *App) requireLogin(run func()) {
	if !a.isLoggedIn() {
		a.notify.Show(noticeError, "Please login first")
		return
	}
	run()
}

func (a *App) printHelp() {
	if !a.isLoggedIn() {
		fmt.Println("Available commands: login, signup, help, exit")
		return
	}
	fmt.Println("Available commands:")
	fmt.Println("  instructors, addinstructor, editinstructor <id>, delinstructor <id>")
	fmt.Println("  courses, showcourse <id>, addcourse, editcourse <id>, delcourse <id>")
	fmt.Println("  departments, semesters")
	fmt.Println("  traces [courseId], addtrace <courseId>, showtrace <courseId> <traceId>")
	fmt.Println("  deltrace <courseId> <traceId>, viewpdf <courseId> <traceId>, downloadpdf <courseId> <traceId>")
	fmt.Println("  whoami, logout, exit")
}
