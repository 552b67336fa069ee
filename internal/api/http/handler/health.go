package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthService interface {
	IsOK(ctx context.Context) (bool, error)
	CountFrames(ctx context.Context) (int64, error)
}

type HealthHandler struct {
	BaseHandler

	log *zap.Logger
	svc HealthService
}

func NewHealthHandler(log *zap.Logger, svc HealthService) *HealthHandler {
	return &HealthHandler{
		BaseHandler: BaseHandler{},
		log:         log,
		svc:         svc,
	}
}

// HealthResponse
// @Description Состояние сервиса и базы.
type HealthResponse struct {
	Database string `json:"database" example:"ok"` // ok или not available
	Frames   int64  `json:"frames" example:"128"`  // Всего зарегистрировано кадров
} // @Name HealthResponse

// Ping
// @Summary Проверка здоровья сервиса.
// @Description Возвращает “pong”.
// @Tags Health
// @Produce json
// @Success 200 {object} ResponseWithMessage "Success"
// @Router /health/ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, ResponseWithMessage{
		Status:  StatusSuccess,
		Message: "pong",
	})
}

// Health
// @Summary Проверка соединения с базой.
// @Tags Health
// @Produce json
// @Success 200 {object} ResponseWithData{data=HealthResponse} "Success"
// @Failure 503 {object} ResponseWithMessage "Database is unavailable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.svc.IsOK(ctx); err != nil {
		h.log.Warn("health check failed", zap.Error(err))

		c.JSON(http.StatusServiceUnavailable, ResponseWithMessage{
			Status:  StatusNotAvailable,
			Message: err.Error(),
		})

		return
	}

	count, err := h.svc.CountFrames(ctx)
	if err != nil {
		h.log.Error("failed to count frames", zap.Error(err))
		h.InternalError(c)

		return
	}

	c.JSON(http.StatusOK, ResponseWithData{
		Status: StatusSuccess,
		Data: HealthResponse{
			Database: StatusOK,
			Frames:   count,
		},
	})
}
