package cli

import (
	"context"
	"fmt"
)

func (a *App) ListDepartments(ctx context.Context) error {
	departments, err := a.lookups.Departments(ctx)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}
	for _, d := range departments {
		fmt.Printf("%d  %s\n", d.DepartmentID, d.Name)
	}
	return nil
}

func (a *App) ListSemesters(ctx context.Context) error {
	semesters, err := a.lookups.Semesters(ctx)
	if err != nil {
		a.notify.Show(noticeError, "%s", err.Error())
		return err
	}
	for _, s := range semesters {
		fmt.Printf("%s  %s\n", s.SemesterTerm, s.Name)
	}
	return nil
}
