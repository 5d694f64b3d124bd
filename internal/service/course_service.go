package service

import (
	"context"
	"fmt"
	"io"

	"edusync_gateway/internal/model"
	"edusync_gateway/internal/upstream"
)

type CourseService struct {
	Upstream *upstream.Client
	Storage  *StorageService
	Authz    Authorizer
}

func NewCourseService(up *upstream.Client, storage *StorageService, authz Authorizer) *CourseService {
	return &CourseService{Upstream: up, Storage: storage, Authz: authz}
}

// CourseInput carries the authoring form fields plus the optional media
// upload.
type CourseInput struct {
	Title       string
	Description string
	FileName    string
	File        io.Reader
	FileSize    int64
	ContentType string
}

// CourseDetail is a course plus whether the requesting session may manage
// it, so the view can show or hide the authoring controls.
type CourseDetail struct {
	Course    model.Course `json:"course"`
	CanManage bool         `json:"canManage"`
}

func (s *CourseService) ListCourses(ctx context.Context, sess *model.Session) ([]model.Course, error) {
	courses, err := s.Upstream.ListCourses(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		courses[i].Normalize()
	}
	return courses, nil
}

func (s *CourseService) GetCourse(ctx context.Context, sess *model.Session, id string) (*CourseDetail, error) {
	if id == "" {
		return nil, Invalid("course id is required")
	}
	course, err := s.Upstream.GetCourse(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	return &CourseDetail{
		Course:    *course,
		CanManage: s.Authz.CanManage(sess, course),
	}, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, sess *model.Session, in CourseInput) (*model.Course, error) {
	form, err := s.buildForm(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.Upstream.CreateCourse(ctx, sess.Token, *form)
}

func (s *CourseService) UpdateCourse(ctx context.Context, sess *model.Session, id string, in CourseInput) (*model.Course, error) {
	if id == "" {
		return nil, Invalid("course id is required")
	}
	form, err := s.buildForm(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.Upstream.UpdateCourse(ctx, sess.Token, id, *form)
}

func (s *CourseService) DeleteCourse(ctx context.Context, sess *model.Session, id string) error {
	if id == "" {
		return Invalid("course id is required")
	}
	return s.Upstream.DeleteCourse(ctx, sess.Token, id)
}

func (s *CourseService) buildForm(ctx context.Context, in CourseInput) (*upstream.CourseForm, error) {
	if err := validateCourseInput(in); err != nil {
		return nil, err
	}

	form := &upstream.CourseForm{
		Title:       in.Title,
		Description: in.Description,
	}
	if in.File == nil {
		return form, nil
	}

	if s.Storage.Passthrough() {
		form.File = &upstream.FileUpload{Name: in.FileName, Reader: in.File}
		return form, nil
	}

	url, err := s.Storage.Stage(ctx, in.FileName, in.File, in.FileSize, in.ContentType)
	if err != nil {
		return nil, err
	}
	if len(url) > model.MediaURLMaxLength {
		return nil, Invalid(fmt.Sprintf("media URL exceeds %d characters", model.MediaURLMaxLength))
	}
	form.MediaURL = url
	return form, nil
}

func validateCourseInput(in CourseInput) error {
	if in.Title == "" {
		return Invalid("title is required")
	}
	if len(in.Title) > model.TitleMaxLength {
		return Invalid(fmt.Sprintf("title exceeds %d characters", model.TitleMaxLength))
	}
	if in.Description == "" {
		return Invalid("description is required")
	}
	if len(in.Description) > model.DescriptionMaxLength {
		return Invalid(fmt.Sprintf("description exceeds %d characters", model.DescriptionMaxLength))
	}
	return nil
}
