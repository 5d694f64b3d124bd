package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"edusync_gateway/internal/model"
)

// FileUpload is an optional media attachment for a course form.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

// CourseForm is what the backend's multipart course endpoints accept.
// MediaURL is only sent when media was staged by the gateway instead of
// being forwarded raw.
type CourseForm struct {
	Title       string
	Description string
	MediaURL    string
	File        *FileUpload
}

func (c *Client) ListCourses(ctx context.Context, token string) ([]model.Course, error) {
	var courses []model.Course
	if err := c.prober.getJSON(ctx, OpListCourses, token, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) GetCourse(ctx context.Context, token, courseID string) (*model.Course, error) {
	var course model.Course
	if err := c.prober.getJSON(ctx, OpCourseByID, token, &course, courseID); err != nil {
		return nil, err
	}
	if course.ID == "" {
		return nil, &DecodeError{Path: "course", Err: fmt.Errorf("missing required fields")}
	}
	course.Normalize()
	return &course, nil
}

func (c *Client) CreateCourse(ctx context.Context, token string, form CourseForm) (*model.Course, error) {
	body, contentType, err := encodeCourseForm(form)
	if err != nil {
		return nil, err
	}
	data, err := c.do(ctx, http.MethodPost, "/api/Courses", token, contentType, body)
	if err != nil {
		return nil, err
	}
	var course model.Course
	if err := decodeInto("/api/Courses", data, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) UpdateCourse(ctx context.Context, token, courseID string, form CourseForm) (*model.Course, error) {
	body, contentType, err := encodeCourseForm(form)
	if err != nil {
		return nil, err
	}
	path := "/api/Courses/" + courseID
	data, err := c.do(ctx, http.MethodPut, path, token, contentType, body)
	if err != nil {
		return nil, err
	}
	var course model.Course
	if err := decodeInto(path, data, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) DeleteCourse(ctx context.Context, token, courseID string) error {
	return c.delete(ctx, "/api/Courses/"+courseID, token)
}

func encodeCourseForm(form CourseForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", form.Title); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("description", form.Description); err != nil {
		return nil, "", err
	}
	if form.MediaURL != "" {
		if err := w.WriteField("mediaUrl", form.MediaURL); err != nil {
			return nil, "", err
		}
	}
	if form.File != nil {
		part, err := w.CreateFormFile("file", form.File.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, form.File.Reader); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
