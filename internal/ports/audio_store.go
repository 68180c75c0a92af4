package ports

import (
	"context"
	"io"
)

// AudioStore — локальное хранилище сгенерированных mp3.
type AudioStore interface {
	NewPath() (filename, fullPath string)
	Open(filename string) (io.ReadCloser, error)
	Remove(filename string) error
}

// AudioArchive — необязательная выгрузка в S3 (best-effort).
type AudioArchive interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (publicURL string, err error)
}
