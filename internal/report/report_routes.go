package report

import (
	"go-timeclock/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/daily", middleware.Authorize(enforcer, "report", "read"), h.Daily)
		reports.GET("/range", middleware.Authorize(enforcer, "report", "read"), h.Range)
		reports.GET("/daily/export", middleware.Authorize(enforcer, "report", "export"), h.ExportDaily)
	}
}
