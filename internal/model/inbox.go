package model

import (
	"time"
)

// ImageExt расширение, с которым сохраняются все загруженные кадры.
const ImageExt = ".jpg"

// InboxEntry - одна строка таблицы frames.inbox, один файл на диске.
type InboxEntry struct {
	RequestCode  int64     `db:"request_code" json:"requestCode"`
	Filename     string    `db:"filename" json:"filename"`
	RegisteredAt time.Time `db:"registered_at" json:"registeredAt"`
}

// InboxEntryResponse
// @Description Сохранённый кадр: имя файла и время регистрации.
type InboxEntryResponse struct {
	Filename     string    `json:"filename" example:"3f1c9a9e-5f0e-4b7a-9d53-0c2f1c7e9b11.jpg"` // Filename сгенерированное имя файла
	RegisteredAt time.Time `json:"registeredAt" example:"2024-01-15T10:30:00Z"`                 // RegisteredAt время загрузки пачки
} // @Name InboxEntryResponse

// FrameUploadQuery - query-параметры загрузки пачки кадров.
type FrameUploadQuery struct {
	RequestCode *int64 `form:"requestCode" binding:"required"`
}

func NewInboxEntryResponse(e InboxEntry) InboxEntryResponse {
	return InboxEntryResponse{
		Filename:     e.Filename,
		RegisteredAt: e.RegisteredAt,
	}
}

// NewInboxEntryResponses never returns nil so an empty result encodes as [].
func NewInboxEntryResponses(entries []InboxEntry) []InboxEntryResponse {
	res := make([]InboxEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, NewInboxEntryResponse(e))
	}

	return res
}
