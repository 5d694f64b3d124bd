package controller

import (
	"edusync_gateway/internal/middleware"
	"edusync_gateway/internal/service"
	"edusync_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Student godoc
// @Summary Student dashboard
// @Description Splits the catalogue into enrolled and available courses
// @Tags dashboards
// @Produce json
// @Success 200 {object} util.Response{data=service.StudentDashboard}
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/dashboard/student [get]
func (c *DashboardController) Student(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	dash, err := c.DashboardService.StudentDashboard(ctx.Request.Context(), sess)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, dash)
}

// Instructor godoc
// @Summary Instructor dashboard
// @Description Lists the courses taught by the signed-in instructor
// @Tags dashboards
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/dashboard/instructor [get]
func (c *DashboardController) Instructor(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	courses, err := c.DashboardService.InstructorDashboard(ctx.Request.Context(), sess)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}
