package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"edusync_gateway/internal/service"
	"edusync_gateway/internal/upstream"
	"edusync_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Authenticates against the backend and opens a session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=service.LoginResult}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		var se *upstream.StatusError
		switch {
		case errors.As(err, &se) && (se.Code == http.StatusUnauthorized || se.Code == http.StatusBadRequest):
			util.Error(ctx, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, service.ErrNoToken), errors.Is(err, service.ErrInvalidRole), errors.Is(err, util.ErrMalformedToken):
			util.Error(ctx, http.StatusBadGateway, "Login failed: unexpected response from server")
		default:
			respondServiceError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// Logout godoc
// @Summary Log out
// @Description Destroys the current session
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	sessionID := strings.TrimPrefix(header, "Bearer ")
	if err := c.AuthService.Logout(ctx.Request.Context(), sessionID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"landing": "/login"})
}

// Register godoc
// @Summary Register
// @Description Forwards a signup request to the backend
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil || len(body) == 0 {
		util.BadRequest(ctx, "request body is required")
		return
	}
	echoed, err := c.AuthService.Register(ctx.Request.Context(), json.RawMessage(body))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, echoed)
}
