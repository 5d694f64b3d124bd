package service

import (
	"strings"

	"edusync_gateway/internal/model"
)

// Authorizer answers whether a session may manage a course. Management
// covers authoring assessments under the course and reading its results.
type Authorizer interface {
	CanManage(sess *model.Session, course *model.Course) bool
}

// ClaimsAuthorizer grants management to instructors whose email local
// part matches the course's instructor name. The backend stores only an
// instructor display name on the course, so the match is by name, not id.
type ClaimsAuthorizer struct{}

func (ClaimsAuthorizer) CanManage(sess *model.Session, course *model.Course) bool {
	if sess == nil || course == nil {
		return false
	}
	if sess.Role != model.Instructor {
		return false
	}
	local := sess.EmailLocalPart()
	if local == "" {
		return false
	}
	return local == strings.ToLower(strings.TrimSpace(course.InstructorName))
}
