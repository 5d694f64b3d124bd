package controller

import (
	"net/http"

	"edusync_gateway/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type HealthController struct {
	Redis *redis.Client
}

func NewHealthController(rdb *redis.Client) *HealthController {
	return &HealthController{Redis: rdb}
}

// @Summary Health check
// @Description Reports gateway liveness and session store connectivity
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Session store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"sessions": "ok",
		},
	})
}
