package app

import (
	"database/sql"

	"go-timeclock/internal/auth"
	"go-timeclock/internal/authz"
	"go-timeclock/internal/config"
	"go-timeclock/internal/employee"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/report"
	"go-timeclock/internal/shared/counter"
	"go-timeclock/internal/shift"
	"go-timeclock/internal/timeclock"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	policy := shift.Policy{
		StandardWorkMinutes: cfg.StandardWorkMinutes,
		MaxBreakMinutes:     cfg.MaxBreakMinutes,
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	timeclockRepo := timeclock.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Authorization ---
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo)
	timeclockService := timeclock.NewServiceWithOutbox(db, timeclockRepo, employeeRepo, outboxRepo, policy)
	reportService := report.NewService(timeclockRepo, rdb, report.NewCSVSink())

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	timeclockHandler := timeclock.NewHandlerWithRedis(timeclockService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		timeclock.RegisterRoutes(api, timeclockHandler, enforcer, rdb)
		report.RegisterRoutes(api, reportHandler, enforcer)
	}

	return nil
}
