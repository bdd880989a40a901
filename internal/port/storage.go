package port

import (
	"context"
	"io"
	"time"
)

// UploadInput describes an object to store in the configured bucket.
type UploadInput struct {
	Key                string
	Body               io.Reader
	ContentType        string
	ContentDisposition string
}

// UploadOutput contains the result of a successful upload.
type UploadOutput struct {
	Bucket   string
	Key      string
	Location string
}

// ObjectStorage abstracts cloud object storage for generated exports.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
