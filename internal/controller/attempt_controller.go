package controller

import (
	"edusync_gateway/internal/middleware"
	"edusync_gateway/internal/service"
	"edusync_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

// SubmitRequest carries one option index per question; -1 means the
// question was left unanswered.
type SubmitRequest struct {
	Answers []int `json:"answers"`
}

// Start godoc
// @Summary Start an attempt
// @Description Loads the assessment and gates repeat attempts
// @Tags attempts
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} util.Response{data=service.AttemptView}
// @Failure 404 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/assessments/{id}/attempt [get]
func (c *AttemptController) Start(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	view, err := c.AttemptService.Start(ctx.Request.Context(), sess, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Submit godoc
// @Summary Submit an attempt
// @Description Scores the answers, records the result and returns the review
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path string true "Assessment id"
// @Param body body SubmitRequest true "Answers"
// @Success 200 {object} util.Response{data=service.SubmissionReview}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/assessments/{id}/attempt [post]
func (c *AttemptController) Submit(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	review, err := c.AttemptService.Submit(ctx.Request.Context(), sess, ctx.Param("id"), req.Answers)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, review)
}
