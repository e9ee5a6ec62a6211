package http

import (
	"github.com/gin-gonic/gin"

	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/handlers"
	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/middleware"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
)

// RegisterRoutes wires the API surface. The task group runs behind the
// bearer-token gate; each route then declares its role requirement. Logout
// is deliberately outside the gate: revoking an already-expired token must
// still succeed.
func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	authenticate gin.HandlerFunc,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		tasks := api.Group("/tasks")
		tasks.Use(authenticate)
		{
			tasks.POST("", middleware.RequireRole(domain.RoleManager), taskHandler.CreateTask)
			tasks.GET("/employees", middleware.RequireRole(domain.RoleManager), taskHandler.ListEmployees)
			tasks.GET("/manager", middleware.RequireRole(domain.RoleManager), taskHandler.ListManagerTasks)
			tasks.GET("/my", middleware.RequireRole(domain.RoleEmployee), taskHandler.ListMyTasks)
			tasks.PATCH("/:id/status", middleware.RequireRole(domain.RoleEmployee), taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", middleware.RequireRole(domain.RoleManager), taskHandler.DeleteTask)
		}
	}
}
