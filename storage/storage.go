package storage

import "context"

// UploadResult carries the durable URL handed back to clients plus the
// provider-side id needed to destroy the asset again.
type UploadResult struct {
	URL      string
	PublicID string
}

// Uploader streams an in-memory file buffer to a remote media store.
// Destroy exists only for compensation: when a database write fails after a
// successful upload, the handler removes the now-orphaned asset best-effort.
type Uploader interface {
	Upload(ctx context.Context, data []byte, folder string) (UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}
