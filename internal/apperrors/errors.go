package apperrors

import (
	"errors"
)

var (
	ErrShutdown = errors.New("shutdown error")

	ErrDatabaseUnavailable = errors.New("database is unavailable")

	ErrInvalidRequestCode = errors.New("request code must be an integer")
	ErrInvalidMultipart   = errors.New("invalid multipart form")

	ErrCacheMiss         = errors.New("cache miss")
	ErrCacheInvalidation = errors.New("frames stored but cache invalidation failed")
)
