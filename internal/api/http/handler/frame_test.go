package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"frame-inbox/internal/api/http/handler"
	"frame-inbox/internal/api/http/handler/mocks"
	"frame-inbox/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(svc handler.FrameService) *gin.Engine {
	h := handler.NewFrameHandler(zap.NewNop(), svc)

	r := gin.New()
	r.PUT("/frame/", h.UploadFrames)
	r.GET("/frame/:requestCode", h.ListFrames)
	r.DELETE("/frame/:requestCode", h.DeleteFrames)

	return r
}

func multipartBody(t *testing.T, payloads ...[]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for i, p := range payloads {
		part, err := w.CreateFormFile("images", "frame"+string(rune('a'+i))+".png")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}

		if _, err := part.Write(p); err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	return body, w.FormDataContentType()
}

func TestFrameHandler_Upload_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockFrameService(ctrl)

	svc.EXPECT().
		Upload(gomock.Any(), int64(42), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, _ int64, images []io.Reader) ([]model.InboxEntry, error) {
			first, _ := io.ReadAll(images[0])
			second, _ := io.ReadAll(images[1])

			if !bytes.Equal(first, []byte{0x01, 0x02}) || !bytes.Equal(second, []byte{0x03, 0x04}) {
				t.Fatalf("expected payloads in upload order, got %v and %v", first, second)
			}

			return nil, nil
		}).
		Times(1)

	body, contentType := multipartBody(t, []byte{0x01, 0x02}, []byte{0x03, 0x04})

	req := httptest.NewRequest(http.MethodPut, "/frame/?requestCode=42", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestFrameHandler_Upload_ZeroRequestCodeAndNoBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockFrameService(ctrl)
	svc.EXPECT().Upload(gomock.Any(), int64(0), gomock.Len(0)).Return(nil, nil).Times(1)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/frame/?requestCode=0", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestFrameHandler_Upload_InvalidRequestCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockFrameService(ctrl)
	svc.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, target := range []string{"/frame/", "/frame/?requestCode=abc", "/frame/?requestCode=1.5"} {
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, target, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestFrameHandler_Upload_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockFrameService(ctrl)
	svc.EXPECT().Upload(gomock.Any(), int64(1), gomock.Any()).Return(nil, errors.New("disk full")).Times(1)

	body, contentType := multipartBody(t, []byte("x"))

	req := httptest.NewRequest(http.MethodPut, "/frame/?requestCode=1", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestFrameHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	at := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	svc := mocks.NewMockFrameService(ctrl)
	svc.EXPECT().
		List(gomock.Any(), int64(42)).
		Return([]model.InboxEntry{{RequestCode: 42, Filename: "a.jpg", RegisteredAt: at}}, nil).
		Times(1)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frame/42", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}

	if got[0]["filename"] != "a.jpg" || got[0]["registeredAt"] != "2024-01-15T10:30:00Z" {
		t.Fatalf("unexpected entry %v", got[0])
	}

	if _, ok := got[0]["requestCode"]; ok {
		t.Fatalf("expected requestCode to be omitted, got %v", got[0])
	}
}

func TestFrameHandler_List_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockFrameService(ctrl)
	svc.EXPECT().List(gomock.Any(), int64(-3)).Return(nil, nil).Times(1)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frame/-3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if got := rec.Body.String(); got != "[]" {
		t.Fatalf("expected [], got %s", got)
	}
}

func TestFrameHandler_List_InvalidRequestCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockFrameService(ctrl)
	svc.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frame/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFrameHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockFrameService(ctrl)
	svc.EXPECT().
		Delete(gomock.Any(), int64(7)).
		Return([]model.InboxEntry{{Filename: "a.jpg"}, {Filename: "b.jpg"}}, nil).
		Times(1)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/frame/7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []model.InboxEntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if len(got) != 2 || got[0].Filename != "a.jpg" || got[1].Filename != "b.jpg" {
		t.Fatalf("unexpected deleted set %v", got)
	}
}

func TestFrameHandler_Delete_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockFrameService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil, errors.New("file is gone")).Times(1)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/frame/7", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
