package upstream

import (
	"context"
	"net/http"

	"edusync_gateway/internal/model"
)

func (c *Client) ListEnrollments(ctx context.Context, token string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	if err := c.getJSON(ctx, "/api/Enrollments", token, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (c *Client) Enroll(ctx context.Context, token, courseID string) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/Enrollments/student", token, model.Enrollment{CourseID: courseID}, nil)
}

func (c *Client) Unenroll(ctx context.Context, token, courseID string) error {
	return c.delete(ctx, "/api/Enrollments/student/"+courseID, token)
}

func (c *Client) CourseStudents(ctx context.Context, token, courseID string) ([]model.EnrolledStudent, error) {
	var students []model.EnrolledStudent
	if err := c.getJSON(ctx, "/api/Enrollments/course/"+courseID+"/students", token, &students); err != nil {
		return nil, err
	}
	return students, nil
}
