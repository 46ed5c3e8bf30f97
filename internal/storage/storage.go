package storage

import "context"

// Store persists synthesized audio and returns a reference the front
// end can fetch (a relative path for local storage, a URL for GCS).
type Store interface {
	SaveAudio(ctx context.Context, data []byte) (string, error)
}
