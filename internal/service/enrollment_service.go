package service

import (
	"context"

	"edusync_gateway/internal/model"
	"edusync_gateway/internal/upstream"
)

type EnrollmentService struct {
	Upstream *upstream.Client
}

func NewEnrollmentService(up *upstream.Client) *EnrollmentService {
	return &EnrollmentService{Upstream: up}
}

func (s *EnrollmentService) Enroll(ctx context.Context, sess *model.Session, courseID string) error {
	if courseID == "" {
		return Invalid("course id is required")
	}
	return s.Upstream.Enroll(ctx, sess.Token, courseID)
}

func (s *EnrollmentService) Unenroll(ctx context.Context, sess *model.Session, courseID string) error {
	if courseID == "" {
		return Invalid("course id is required")
	}
	return s.Upstream.Unenroll(ctx, sess.Token, courseID)
}

// CourseStudents lists the students enrolled in a course, for the
// instructor's roster view.
func (s *EnrollmentService) CourseStudents(ctx context.Context, sess *model.Session, courseID string) ([]model.EnrolledStudent, error) {
	if courseID == "" {
		return nil, Invalid("course id is required")
	}
	return s.Upstream.CourseStudents(ctx, sess.Token, courseID)
}
