package controller

import (
	"edusync_gateway/internal/middleware"
	"edusync_gateway/internal/service"
	"edusync_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags enrollments
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses/{courseId}/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	if err := c.EnrollmentService.Enroll(ctx.Request.Context(), sess, ctx.Param("courseId")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Unenroll godoc
// @Summary Leave a course
// @Tags enrollments
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses/{courseId}/enroll [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	if err := c.EnrollmentService.Unenroll(ctx.Request.Context(), sess, ctx.Param("courseId")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Students godoc
// @Summary List a course's enrolled students
// @Tags enrollments
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} util.Response{data=[]model.EnrolledStudent}
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses/{courseId}/students [get]
func (c *EnrollmentController) Students(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	students, err := c.EnrollmentService.CourseStudents(ctx.Request.Context(), sess, ctx.Param("courseId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, students)
}
