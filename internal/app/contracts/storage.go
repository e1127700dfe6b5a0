package contracts

import (
	"context"
	"io"
)

// UploadedObject identifies a stored file: URL for clients, ObjectName for
// later deletion.
type UploadedObject struct {
	URL        string
	ObjectName string
}

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, size int64, contentType, objectName string) (*UploadedObject, error)
	DeleteFile(ctx context.Context, objectName string) error
}
