package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/divyaannsh/followus/docs"
	"github.com/divyaannsh/followus/internal/dto"
	"github.com/divyaannsh/followus/internal/service"
)

type Handler struct {
	eventService service.EventServicer
	router       *gin.Engine
	log          *zap.Logger
}

func NewHandler(eventService service.EventServicer, log *zap.Logger) *Handler {
	h := &Handler{
		eventService: eventService,
		router:       gin.Default(),
		log:          log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/track", h.trackEvent)
	h.router.GET("/stats", h.getStats)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// trackEvent handles POST /track
// @Summary Record a telemetry event
// @Description Record one profile view or link click for a public profile
// @Tags analytics
// @Accept json
// @Produce json
// @Param event body dto.TrackEventRequest true "Event data"
// @Success 201 {object} dto.TrackEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /track [post]
func (h *Handler) trackEvent(c *gin.Context) {
	var req dto.TrackEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid track request",
			zap.Error(err),
			zap.String("username", req.Username))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	referrer := c.GetHeader("Referer")

	if err := h.eventService.TrackEvent(&req, referrer); err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}
		h.log.Error("Failed to record event",
			zap.Error(err),
			zap.String("username", req.Username),
			zap.String("type", req.Type))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "ingestion_failure",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.TrackEventResponse{
		Status: "recorded",
	})
}

// getStats handles GET /stats
// @Summary Get profile analytics
// @Description Retrieve totals, click-through rate, ranked links, traffic sources and the daily series for one profile over a trailing window
// @Tags analytics
// @Produce json
// @Param username query string true "Profile username" example:"alice"
// @Param days query int false "Trailing window in days, 0 for all time" default(30) example:"30"
// @Success 200 {object} dto.GetStatsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	var req dto.GetStatsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid stats request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.eventService.GetStats(&req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}
		h.log.Error("Failed to get stats",
			zap.Error(err),
			zap.String("username", req.Username),
			zap.Int("days", req.Days))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "query_failure",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Stats retrieved",
		zap.String("username", req.Username),
		zap.Int("total_views", response.TotalViews),
		zap.Int("total_clicks", response.TotalClicks))

	c.JSON(http.StatusOK, response)
}
