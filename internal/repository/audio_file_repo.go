package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type FileAudioStore struct {
	dir string
}

func NewFileAudioStore(dir string) *FileAudioStore {
	return &FileAudioStore{dir: dir}
}

func (s *FileAudioStore) Save(ctx context.Context, audio []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	name := NewAudioFilename()
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}

	if _, err := f.Write(audio); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close audio file: %w", err)
	}
	return name, nil
}

func (s *FileAudioStore) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if !ValidAudioFilename(filename) {
		return nil, ErrAudioNotFound
	}

	path := filepath.Join(s.dir, filename)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAudioNotFound
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrAudioNotFound
	}

	return os.Open(path)
}
