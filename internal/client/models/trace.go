package models

// Trace is an uploaded trace-survey record. The PDF itself is write-only from
// the client: sent on creation, re-fetched only as an opaque blob for viewing.
type Trace struct {
	TraceID      string `json:"trace_id"`
	UserID       string `json:"user_id"`
	FileName     string `json:"file_name"`
	DateCreated  string `json:"date_created"`
	BucketPath   string `json:"bucket_path"`
	CourseID     string `json:"course_id"`
	InstructorID string `json:"instructor_id"`
	SemesterTerm string `json:"semester_term"`
	Section      string `json:"section"`
}

// TraceRequest carries the structured fields plus the survey file for the
// multipart create call.
type TraceRequest struct {
	InstructorID string
	SemesterTerm string
	Section      string
	FileName     string
	File         []byte
}
