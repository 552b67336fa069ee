package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"frame-inbox/internal/apperrors"
)

const (
	StatusErr           = "error"
	StatusSuccess       = "success"
	StatusNotAvailable  = "not available"
	StatusOK            = "ok"
	StatusInvalidInput  = "invalid_input"
	StatusInternalError = "internal_error"
)

type BaseHandler struct{}

// ParseRequestCode reads an integer path parameter. Any int64, including 0 and negatives, is valid.
func (h *BaseHandler) ParseRequestCode(c *gin.Context, name string) (int64, error) {
	code, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.ErrInvalidRequestCode
	}

	return code, nil
}

func (h *BaseHandler) InvalidInput(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ResponseWithMessage{
		Status:  StatusInvalidInput,
		Message: message,
	})
}

func (h *BaseHandler) InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ResponseWithMessage{
		Status:  StatusInternalError,
		Message: "internal server error",
	})
}

// ResponseWithData
// @Description Общий ответ success/error, содержащий произвольные данные.
type ResponseWithData struct {
	Status string `json:"status"` // Результат запроса
	Data   any    `json:"data"`   // Объект полезной нагрузки
} // @Name _ResponseWithData

// ResponseWithMessage
// @Description Общий простой ответ, который передает только понятное для человека сообщение.
type ResponseWithMessage struct {
	Status  string `json:"status"`  // Результат запроса
	Message string `json:"message"` // Человеко-читаемое сообщение
} // @Name _ResponseWithMessage

func NoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ResponseWithMessage{
		Status:  StatusNotAvailable,
		Message: "method not allowed on this endpoint",
	})
}

func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ResponseWithMessage{
		Status:  StatusNotAvailable,
		Message: "page not found",
	})
}
