package model

// Enrollment links a student to a course.
type Enrollment struct {
	ID       string `json:"id,omitempty"`
	CourseID string `json:"courseId"`
	UserID   string `json:"userId,omitempty"`
}

// EnrolledStudent is a course roster entry as the backend returns it.
type EnrolledStudent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
