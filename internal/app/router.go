package app

import (
	"edusync_gateway/docs"
	"edusync_gateway/internal/middleware"
	"edusync_gateway/internal/model"
	"edusync_gateway/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.SessionMiddleware(s.sessions))
	{
		a.registerSharedRoutes(authGroup, c)
		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", c.auth.Login)
		public.POST("/auth/register", c.auth.Register)
	}
}

// Routes any signed-in user can reach, student or instructor.
func (a *App) registerSharedRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/auth/logout", c.auth.Logout)

	rg.GET("/courses", c.course.List)
	rg.GET("/courses/:courseId", c.course.Get)
	rg.GET("/courses/:courseId/assessments", c.assessment.ListByCourse)
	rg.GET("/assessments/:id", c.assessment.Get)
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	student := rg.Group("")
	student.Use(middleware.RoleMiddleware(model.Student))
	{
		student.GET("/dashboard/student", c.dashboard.Student)

		student.POST("/courses/:courseId/enroll", c.enrollment.Enroll)
		student.DELETE("/courses/:courseId/enroll", c.enrollment.Unenroll)

		student.GET("/assessments/:id/attempt", c.attempt.Start)
		student.POST("/assessments/:id/attempt", c.attempt.Submit)
	}
}

func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("")
	instructor.Use(middleware.RoleMiddleware(model.Instructor))
	{
		instructor.GET("/dashboard/instructor", c.dashboard.Instructor)

		instructor.POST("/courses", c.course.Create)
		instructor.PUT("/courses/:courseId", c.course.Update)
		instructor.DELETE("/courses/:courseId", c.course.Delete)
		instructor.GET("/courses/:courseId/students", c.enrollment.Students)

		instructor.POST("/assessments/draft/questions", c.assessment.AddQuestion)
		instructor.POST("/assessments/draft/questions/remove", c.assessment.RemoveQuestion)
		instructor.POST("/courses/:courseId/assessments", c.assessment.Save)
		instructor.DELETE("/assessments/:id", c.assessment.Delete)

		instructor.GET("/assessments/:id/results", c.result.ByAssessment)
	}
}
