package models

// Department and SemesterTerm are flat lookup records, read-only for the
// client.

type Department struct {
	DepartmentID int    `json:"department_id"`
	Name         string `json:"name"`
}

type SemesterTerm struct {
	SemesterTerm string `json:"semester_term"`
	Name         string `json:"name"`
}
