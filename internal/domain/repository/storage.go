package repository

import (
	"context"
)

// ObjectStorage stores uploaded media files.
// Implementations should be provided by the infrastructure layer (e.g., MinIO, S3).
type ObjectStorage interface {
	// Store writes content at path, replacing any existing object.
	// path is the object key within the bucket (e.g., "videos/{video_id}/avatar.mp4").
	Store(ctx context.Context, path string, content []byte, contentType string) error
}
