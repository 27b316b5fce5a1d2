package api

import (
	"net/http"
	"strconv"

	"salon-booking-api/internal/handler/httperr"
	"salon-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
	}
}

// @Summary Dashboard stats
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.DashboardStatsRM
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.analyticsUseCase.GetDashboardStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Revenue series
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "Trailing window in days (default 30)"
// @Success 200 {array} readmodel.RevenuePointRM
// @Router /analytics/revenue [get]
func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	points, err := h.analyticsUseCase.GetRevenue(c.Request.Context(), windowDays(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, points)
}

// @Summary Booking trends
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "Trailing window in days (default 30)"
// @Success 200 {array} readmodel.TrendPointRM
// @Router /analytics/trends [get]
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	points, err := h.analyticsUseCase.GetTrends(c.Request.Context(), windowDays(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, points)
}

// @Summary Popular services
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} readmodel.ServiceStatsRM
// @Router /analytics/popular-services [get]
func (h *AnalyticsHandler) PopularServices(c *gin.Context) {
	stats, err := h.analyticsUseCase.GetPopularServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Artist performance
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} readmodel.ArtistPerformanceRM
// @Router /analytics/artist-performance [get]
func (h *AnalyticsHandler) ArtistPerformance(c *gin.Context) {
	stats, err := h.analyticsUseCase.GetArtistPerformance(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func windowDays(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		return 30
	}
	return days
}
