package timeclock

import (
	"go-timeclock/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.ContextLogger(zap.L()))
	{
		clock := shifts.Group("")
		clock.Use(middleware.Authorize(enforcer, "shift", "clock"))
		if rdb != nil {
			clock.Use(middleware.Idempotency(rdb))
		}
		{
			clock.POST("/login", h.Login)
			clock.POST("/break/start", h.StartBreak)
			clock.POST("/break/end", h.EndBreak)
			clock.POST("/logout", h.Logout)
		}

		shifts.GET("/me/today", middleware.Authorize(enforcer, "shift", "read"), h.GetToday)
		shifts.GET("", middleware.Authorize(enforcer, "shift", "read"), h.GetAll)
	}
}
