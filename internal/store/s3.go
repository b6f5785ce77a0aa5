package store

import (
	"context"
	"errors"
	"path"

	"hotelsys/infras/s3"
	"hotelsys/shared/constant"
)

// S3Backend stores each collection as the object <prefix>/<name>.json.
type S3Backend struct {
	client s3.S3
	bucket string
	prefix string
}

func NewS3Backend(client s3.S3, bucket, prefix string) *S3Backend {
	return &S3Backend{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (b *S3Backend) ObjectKey(name string) string {
	return path.Join(b.prefix, name+constant.FileExtensionJSON)
}

func (b *S3Backend) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := b.client.GetObjectBytes(ctx, b.bucket, b.ObjectKey(name))
	if errors.Is(err, s3.ErrObjectNotFound) {
		return nil, ErrNotExist
	}

	return data, err //nolint:wrapcheck
}

func (b *S3Backend) Write(ctx context.Context, name string, data []byte) error {
	return b.client.PutObjectBytes(ctx, b.bucket, b.ObjectKey(name), constant.ContentTypeJSON, data) //nolint:wrapcheck
}
