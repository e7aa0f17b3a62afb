package models

type Course struct {
	CourseID        string `json:"course_id"`
	DateAdded       string `json:"date_added"`
	DateLastUpdated string `json:"date_last_updated"`
	UserID          string `json:"user_id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	InstructorID    string `json:"instructor_id"`
	DepartmentID    int    `json:"department_id"`
	CreditHours     int    `json:"credit_hours"`
}

type CourseRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	InstructorID string `json:"instructor_id"`
	DepartmentID int    `json:"department_id"`
	CreditHours  int    `json:"credit_hours"`
}

// CoursePatch is a partial update; nil fields are left untouched.
type CoursePatch struct {
	Code         *string `json:"code,omitempty"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	InstructorID *string `json:"instructor_id,omitempty"`
	DepartmentID *int    `json:"department_id,omitempty"`
	CreditHours  *int    `json:"credit_hours,omitempty"`
}
