package employee

import (
	"go-timeclock/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.Authorize(enforcer, "employee", "read"), h.GetAll)
		employees.GET("/:id", middleware.Authorize(enforcer, "employee", "read"), h.GetByID)
		employees.POST("", middleware.Authorize(enforcer, "employee", "write"), h.Create)
		employees.PUT("/:id", middleware.Authorize(enforcer, "employee", "write"), h.Update)
	}
}
