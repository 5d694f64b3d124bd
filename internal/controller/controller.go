package controller

import (
	"errors"
	"net/http"

	"edusync_gateway/internal/service"
	"edusync_gateway/internal/upstream"
	"edusync_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service-layer failures onto the response
// envelope. Input problems never reached the backend and come back as 400;
// backend trouble is surfaced as 502 so clients can tell the two apart.
func respondServiceError(ctx *gin.Context, err error) {
	var pe *upstream.ProbeError
	var se *upstream.StatusError
	var de *upstream.DecodeError

	switch {
	case service.IsValidation(err):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	case errors.Is(err, service.ErrAlreadyCompleted):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAssessmentNotFound), errors.Is(err, service.ErrCourseNotFound):
		util.NotFound(ctx)
	case errors.As(err, &pe), errors.As(err, &se), errors.As(err, &de):
		util.BadGateway(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
