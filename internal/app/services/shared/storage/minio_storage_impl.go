package storage

import (
	"context"
	"fmt"
	"io"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	PublicURL   string
}

func NewMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  driverConfig.Minio.BucketName,
		PublicURL:   driverConfig.Minio.PublicURL,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, objectName string) (*contracts.UploadedObject, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return &contracts.UploadedObject{
		URL:        fmt.Sprintf("%s/%s/%s", m.PublicURL, m.BucketName, objectName),
		ObjectName: objectName,
	}, nil
}

func (m *minioStorage) DeleteFile(ctx context.Context, objectName string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioDeleteObject(err, m.BucketName)
	}
	return nil
}
