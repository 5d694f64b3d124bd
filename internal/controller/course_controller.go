package controller

import (
	"mime/multipart"

	"edusync_gateway/internal/middleware"
	"edusync_gateway/internal/service"
	"edusync_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// List godoc
// @Summary List courses
// @Description Returns the full course catalogue
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Failure 401 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	courses, err := c.CourseService.ListCourses(ctx.Request.Context(), sess)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Get godoc
// @Summary Get a course
// @Description Returns one course and whether the caller may manage it
// @Tags courses
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} util.Response{data=service.CourseDetail}
// @Failure 401 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses/{courseId} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	detail, err := c.CourseService.GetCourse(ctx.Request.Context(), sess, ctx.Param("courseId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// Create godoc
// @Summary Create a course
// @Description Creates a course with optional media upload
// @Tags courses
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param file formData file false "Media file"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	in, cleanup, err := courseInputFromForm(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	defer cleanup()

	course, err := c.CourseService.CreateCourse(ctx.Request.Context(), sess, in)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// Update godoc
// @Summary Update a course
// @Description Replaces a course's fields, with optional new media
// @Tags courses
// @Accept mpfd
// @Produce json
// @Param courseId path string true "Course id"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param file formData file false "Media file"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses/{courseId} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	in, cleanup, err := courseInputFromForm(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	defer cleanup()

	course, err := c.CourseService.UpdateCourse(ctx.Request.Context(), sess, ctx.Param("courseId"), in)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses/{courseId} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	if err := c.CourseService.DeleteCourse(ctx.Request.Context(), sess, ctx.Param("courseId")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func courseInputFromForm(ctx *gin.Context) (service.CourseInput, func(), error) {
	in := service.CourseInput{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
	}
	cleanup := func() {}

	header, err := ctx.FormFile("file")
	if err != nil {
		// No file part is fine; media is optional.
		return in, cleanup, nil
	}
	file, err := header.Open()
	if err != nil {
		return in, cleanup, err
	}
	in.FileName = header.Filename
	in.File = file
	in.FileSize = header.Size
	in.ContentType = header.Header.Get("Content-Type")
	return in, func() { closeQuietly(file) }, nil
}

func closeQuietly(f multipart.File) {
	_ = f.Close()
}
