package service

import (
	"context"
	"errors"
	"strings"

	"edusync_gateway/internal/model"
	"edusync_gateway/internal/upstream"
	"edusync_gateway/pkg/logger"

	"go.uber.org/zap"
)

type DashboardService struct {
	Upstream *upstream.Client
}

func NewDashboardService(up *upstream.Client) *DashboardService {
	return &DashboardService{Upstream: up}
}

// StudentDashboard splits the catalogue into the courses the student is
// enrolled in and the rest.
type StudentDashboard struct {
	EnrolledCourses  []model.Course `json:"enrolledCourses"`
	AvailableCourses []model.Course `json:"availableCourses"`
}

func (s *DashboardService) StudentDashboard(ctx context.Context, sess *model.Session) (*StudentDashboard, error) {
	courses, err := s.Upstream.ListCourses(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		courses[i].Normalize()
	}

	enrollments, err := s.Upstream.ListEnrollments(ctx, sess.Token)
	if err != nil {
		// Enrollment data is an overlay on the catalogue; when it is
		// unavailable the dashboard still lists every course as available.
		var se *upstream.StatusError
		if !errors.As(err, &se) {
			return nil, err
		}
		logger.Log.Warn("enrollment lookup failed",
			zap.Int("status", se.Code))
		enrollments = nil
	}

	enrolled := make(map[string]bool, len(enrollments))
	for _, e := range enrollments {
		enrolled[strings.ToLower(e.CourseID)] = true
	}

	dash := &StudentDashboard{
		EnrolledCourses:  make([]model.Course, 0),
		AvailableCourses: make([]model.Course, 0, len(courses)),
	}
	for _, c := range courses {
		if enrolled[strings.ToLower(c.ID)] {
			dash.EnrolledCourses = append(dash.EnrolledCourses, c)
		} else {
			dash.AvailableCourses = append(dash.AvailableCourses, c)
		}
	}
	return dash, nil
}

// InstructorDashboard returns the courses taught by the session's
// instructor, matched by email local part against the instructor name.
func (s *DashboardService) InstructorDashboard(ctx context.Context, sess *model.Session) ([]model.Course, error) {
	courses, err := s.Upstream.ListCourses(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	local := sess.EmailLocalPart()
	own := make([]model.Course, 0)
	for _, c := range courses {
		c.Normalize()
		if local != "" && local == strings.ToLower(strings.TrimSpace(c.InstructorName)) {
			own = append(own, c)
		}
	}
	return own, nil
}
