package models

type Instructor struct {
	InstructorID string `json:"instructor_id"`
	Name         string `json:"name"`
	DateCreated  string `json:"date_created"`
}

type InstructorRequest struct {
	Name string `json:"name"`
}

// InstructorPatch is a partial update; nil fields are left untouched.
type InstructorPatch struct {
	Name *string `json:"name,omitempty"`
}
