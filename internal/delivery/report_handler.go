package delivery

import (
	"net/http"
	"strconv"
	"time"

	"pos_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	useCase domain.ReportUseCase
	log     *logrus.Logger
	now     func() time.Time
}

func NewReportHandler(uc domain.ReportUseCase, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		useCase: uc,
		log:     logger,
		now:     time.Now,
	}
}

func (h *ReportHandler) RegisterRoutes(router gin.IRouter) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", h.DailyReport)
		reports.GET("/monthly", h.MonthlyReport)
		reports.GET("/top-sellers", h.TopSellers)
		reports.GET("/rolling", h.RollingRevenue)
	}
}

func (h *ReportHandler) DailyReport(c *gin.Context) {
	dateStr := c.DefaultQuery("date", h.now().Format("2006-01-02"))
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		h.log.Warnf("Invalid 'date' parameter for daily report: %s", dateStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid 'date', expected YYYY-MM-DD")
		return
	}

	report, err := h.useCase.Daily(c.Request.Context(), day)
	if err != nil {
		h.log.Errorf("Failed to build daily report for %s: %v", dateStr, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to build daily report")
		return
	}

	SuccessResponse(c, http.StatusOK, "Daily report built successfully", report)
}

func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	monthStr := c.DefaultQuery("month", h.now().Format("2006-01"))
	firstOfMonth, err := time.ParseInLocation("2006-01", monthStr, time.Local)
	if err != nil {
		h.log.Warnf("Invalid 'month' parameter for monthly report: %s", monthStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid 'month', expected YYYY-MM")
		return
	}

	report, err := h.useCase.Monthly(c.Request.Context(), firstOfMonth.Year(), firstOfMonth.Month(), time.Local)
	if err != nil {
		h.log.Errorf("Failed to build monthly report for %s: %v", monthStr, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to build monthly report")
		return
	}

	SuccessResponse(c, http.StatusOK, "Monthly report built successfully", report)
}

func (h *ReportHandler) TopSellers(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "5")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		h.log.Warnf("Invalid 'limit' parameter '%s' for top sellers, using default 5", limitStr)
		limit = 5
	}

	stats, err := h.useCase.TopSellers(c.Request.Context(), limit)
	if err != nil {
		h.log.Errorf("Failed to build top sellers report: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to build top sellers report")
		return
	}

	SuccessResponse(c, http.StatusOK, "Top sellers retrieved successfully", stats)
}

func (h *ReportHandler) RollingRevenue(c *gin.Context) {
	daysStr := c.DefaultQuery("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		h.log.Warnf("Invalid 'days' parameter '%s' for rolling revenue, using default 7", daysStr)
		days = 7
	}

	series, err := h.useCase.Rolling(c.Request.Context(), days, h.now())
	if err != nil {
		h.log.Errorf("Failed to build rolling revenue report: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to build rolling revenue report")
		return
	}

	SuccessResponse(c, http.StatusOK, "Rolling revenue retrieved successfully", series)
}
