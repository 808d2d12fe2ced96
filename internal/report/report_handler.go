package report

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-timeclock/internal/shared/apperror"
	"go-timeclock/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseDateParam(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			fmt.Sprintf("Invalid %s, expected YYYY-MM-DD", name), nil)
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) Daily(c *gin.Context) {
	companyID := c.GetString("company_id")

	date, ok := parseDateParam(c, "date", time.Now().UTC().Truncate(24*time.Hour))
	if !ok {
		return
	}

	summary, err := h.service.Daily(c.Request.Context(), companyID, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary, nil)
}

func (h *Handler) Range(c *gin.Context) {
	companyID := c.GetString("company_id")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	from, ok := parseDateParam(c, "from", today)
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to", today)
	if !ok {
		return
	}
	if to.Before(from) {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"Invalid range, 'to' precedes 'from'", nil)
		return
	}

	var employeeIDs []string
	if raw := c.Query("employee_ids"); raw != "" {
		employeeIDs = strings.Split(raw, ",")
	}

	rows, err := h.service.Range(c.Request.Context(), companyID, from, to, employeeIDs)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) ExportDaily(c *gin.Context) {
	companyID := c.GetString("company_id")

	date, ok := parseDateParam(c, "date", time.Now().UTC().Truncate(24*time.Hour))
	if !ok {
		return
	}

	artifact, err := h.service.ExportDaily(c.Request.Context(), companyID, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Name))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
