package model

import "strings"

type Role string

const (
	Student    Role = "student"
	Instructor Role = "instructor"
)

// Session is the explicit per-user session object, created on login and
// destroyed on sign-out. It replaces the ambient key/value storage the
// browser client used.
type Session struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	Role   Role   `json:"role"`
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// EmailLocalPart returns the lowercased part of the email before the @.
// Course ownership is derived from it (see service.Authorizer).
func (s *Session) EmailLocalPart() string {
	local, _, _ := strings.Cut(s.Email, "@")
	return strings.ToLower(local)
}
