package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) SaveAudio(_ context.Context, data []byte) (string, error) {
	path := filepath.Join(s.dir, "audio-"+uuid.NewString()+".mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
