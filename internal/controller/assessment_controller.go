package controller

import (
	"edusync_gateway/internal/middleware"
	"edusync_gateway/internal/service"
	"edusync_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// DraftQuestionRequest updates an authoring draft with one new question.
type DraftQuestionRequest struct {
	Draft    service.Draft         `json:"draft"`
	Question service.QuestionInput `json:"question"`
}

// DraftRemoveRequest drops a question from an authoring draft.
type DraftRemoveRequest struct {
	Draft service.Draft `json:"draft"`
	Index int           `json:"index"`
}

// ListByCourse godoc
// @Summary List a course's assessments
// @Tags assessments
// @Produce json
// @Param courseId path string true "Course id"
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Failure 401 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses/{courseId}/assessments [get]
func (c *AssessmentController) ListByCourse(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	assessments, err := c.AssessmentService.ListByCourse(ctx.Request.Context(), sess, ctx.Param("courseId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, assessments)
}

// Get godoc
// @Summary Get an assessment
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 404 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	assessment, err := c.AssessmentService.Get(ctx.Request.Context(), sess, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, assessment)
}

// AddQuestion godoc
// @Summary Add a question to a draft
// @Description Validates the question and returns the updated draft
// @Tags assessments
// @Accept json
// @Produce json
// @Param body body DraftQuestionRequest true "Draft and question"
// @Success 200 {object} util.Response{data=service.Draft}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/assessments/draft/questions [post]
func (c *AssessmentController) AddQuestion(ctx *gin.Context) {
	var req DraftQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	draft, err := c.AssessmentService.AddQuestion(req.Draft, req.Question)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, draft)
}

// RemoveQuestion godoc
// @Summary Remove a question from a draft
// @Tags assessments
// @Accept json
// @Produce json
// @Param body body DraftRemoveRequest true "Draft and index"
// @Success 200 {object} util.Response{data=service.Draft}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/assessments/draft/questions/remove [post]
func (c *AssessmentController) RemoveQuestion(ctx *gin.Context) {
	var req DraftRemoveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	draft, err := c.AssessmentService.RemoveQuestion(req.Draft, req.Index)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, draft)
}

// Save godoc
// @Summary Save an assessment
// @Description Scores the questions and creates or replaces the assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param courseId path string true "Course id"
// @Param body body service.Draft true "Authoring draft"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/courses/{courseId}/assessments [post]
func (c *AssessmentController) Save(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	var draft service.Draft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	saved, err := c.AssessmentService.Save(ctx.Request.Context(), sess, ctx.Param("courseId"), draft)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, saved)
}

// Delete godoc
// @Summary Delete an assessment
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 502 {object} util.Response
// @Security BearerAuth
// @Router /api/assessments/{id} [delete]
func (c *AssessmentController) Delete(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)
	if err := c.AssessmentService.Delete(ctx.Request.Context(), sess, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
