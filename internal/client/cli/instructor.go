package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/csyeteam03/trace-console/internal/client/models"
)

// ListInstructors fetches and prints all instructors.
func (a *App) ListInstructors(ctx context.Context) error {
	instructors, err := a.instructors.List(ctx)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	if len(instructors) == 0 {
		fmt.Println("No instructors yet")
		return nil
	}
	for _, in := range instructors {
		fmt.Printf("%s  %s\n", in.InstructorID, in.Name)
	}
	return nil
}

// AddInstructor prompts for a name and creates the instructor.
func (a *App) AddInstructor(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter instructor name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		a.notify.Show(noticeError, "Instructor name is required")
		return nil
	}

	created, err := a.instructors.Create(ctx, models.InstructorRequest{Name: name})
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Instructor %s created (%s)", created.Name, created.InstructorID)
	return nil
}

// EditInstructor replaces the instructor's fields via PUT.
func (a *App) EditInstructor(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, 0, "Enter instructor id")
	if err != nil {
		return err
	}

	current, err := a.instructors.Get(ctx, id)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	name, err := GetTextDefault(a.reader, "Enter instructor name", current.Name, os.Stdout)
	if err != nil {
		return err
	}

	if err := a.instructors.Update(ctx, id, models.InstructorRequest{Name: name}); err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Instructor %s updated", id)
	return nil
}

// DeleteInstructor removes an instructor. The 503 "dependent courses" case
// arrives as a ready-made guidance message and the list stays as it was.
func (a *App) DeleteInstructor(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, 0, "Enter instructor id to delete")
	if err != nil {
		return err
	}

	if err := a.instructors.Delete(ctx, id); err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}

	a.notify.Show(noticeSuccess, "Instructor %s deleted", id)
	return nil
}

// argOrPrompt returns args[i] when provided, otherwise prompts for it.
func (a *App) argOrPrompt(args []string, i int, prompt string) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, os.Stdout)
}
