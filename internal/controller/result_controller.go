package controller

import (
	"edusync_gateway/internal/middleware"
	"edusync_gateway/internal/service"
	"edusync_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{ResultService: resultService}
}

// ByAssessment godoc
// @Summary View an assessment's results
// @Description Lists every submission, newest first. Course owners only.
// @Tags results
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} util.Response{data=service.ResultsView}
// @Failure 403 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/assessments/{id}/results [get]
func (c *ResultController) ByAssessment(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	view, err := c.ResultService.AssessmentResults(ctx.Request.Context(), sess, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}
