package handler

//go:generate mockgen -source=frame.go -destination=mocks/frame_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frame-inbox/internal/apperrors"
	"frame-inbox/internal/model"
)

const (
	imagesFormField = "images"
	requestCodeKey  = "requestCode"
)

type FrameService interface {
	Upload(ctx context.Context, requestCode int64, images []io.Reader) ([]model.InboxEntry, error)
	List(ctx context.Context, requestCode int64) ([]model.InboxEntry, error)
	Delete(ctx context.Context, requestCode int64) ([]model.InboxEntry, error)
}

type FrameHandler struct {
	BaseHandler

	log *zap.Logger
	svc FrameService
}

func NewFrameHandler(log *zap.Logger, svc FrameService) *FrameHandler {
	return &FrameHandler{
		BaseHandler: BaseHandler{},
		log:         log,
		svc:         svc,
	}
}

// UploadFrames
// @Summary Загрузка пачки кадров.
// @Description Сохраняет каждый файл из поля images под сгенерированным именем и регистрирует пачку под requestCode. Пустая пачка тоже успешна.
// @Tags Frame
// @Accept multipart/form-data
// @Produce json
// @Param requestCode query int true "Код запроса"
// @Param images formData file false "Кадры (0..N файлов)"
// @Success 201 "Created"
// @Failure 400 {object} ResponseWithMessage "Invalid requestCode or multipart body"
// @Failure 500 {object} ResponseWithMessage "Internal error"
// @Router /frame/ [put]
func (h *FrameHandler) UploadFrames(c *gin.Context) {
	ctx := c.Request.Context()

	var query model.FrameUploadQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.InvalidInput(c, "requestCode query parameter must be an integer")

		return
	}

	headers, err := h.imageHeaders(c)
	if err != nil {
		h.InvalidInput(c, apperrors.ErrInvalidMultipart.Error())

		return
	}

	images := make([]io.Reader, 0, len(headers))

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			h.log.Error("failed to open uploaded file", zap.String("name", fh.Filename), zap.Error(err))
			h.InternalError(c)

			return
		}

		defer f.Close()

		images = append(images, f)
	}

	if _, err := h.svc.Upload(ctx, *query.RequestCode, images); err != nil {
		h.log.Error("failed to upload frames", zap.Int64("request_code", *query.RequestCode), zap.Error(err))
		h.InternalError(c)

		return
	}

	c.Status(http.StatusCreated)
}

// ListFrames
// @Summary Список кадров по коду запроса.
// @Description Возвращает все зарегистрированные кадры для requestCode. Если ничего нет, возвращается пустой массив.
// @Tags Frame
// @Produce json
// @Param requestCode path int true "Код запроса"
// @Success 200 {array} model.InboxEntryResponse "Frames"
// @Failure 400 {object} ResponseWithMessage "Invalid requestCode"
// @Failure 500 {object} ResponseWithMessage "Internal error"
// @Router /frame/{requestCode} [get]
func (h *FrameHandler) ListFrames(c *gin.Context) {
	ctx := c.Request.Context()

	code, err := h.ParseRequestCode(c, requestCodeKey)
	if err != nil {
		h.InvalidInput(c, err.Error())

		return
	}

	entries, err := h.svc.List(ctx, code)
	if err != nil {
		h.log.Error("failed to list frames", zap.Int64("request_code", code), zap.Error(err))
		h.InternalError(c)

		return
	}

	c.JSON(http.StatusOK, model.NewInboxEntryResponses(entries))
}

// DeleteFrames
// @Summary Удаление кадров по коду запроса.
// @Description Удаляет файлы и записи для requestCode и возвращает удалённый набор.
// @Tags Frame
// @Produce json
// @Param requestCode path int true "Код запроса"
// @Success 200 {array} model.InboxEntryResponse "Deleted frames"
// @Failure 400 {object} ResponseWithMessage "Invalid requestCode"
// @Failure 500 {object} ResponseWithMessage "Internal error"
// @Router /frame/{requestCode} [delete]
func (h *FrameHandler) DeleteFrames(c *gin.Context) {
	ctx := c.Request.Context()

	code, err := h.ParseRequestCode(c, requestCodeKey)
	if err != nil {
		h.InvalidInput(c, err.Error())

		return
	}

	entries, err := h.svc.Delete(ctx, code)
	if err != nil {
		h.log.Error("failed to delete frames", zap.Int64("request_code", code), zap.Error(err))
		h.InternalError(c)

		return
	}

	c.JSON(http.StatusOK, model.NewInboxEntryResponses(entries))
}

// imageHeaders treats a body that is not multipart as an empty batch.
func (h *FrameHandler) imageHeaders(c *gin.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidMultipart, err)
	}

	return form.File[imagesFormField], nil
}
