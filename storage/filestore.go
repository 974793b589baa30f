package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileStore persists every key in a single JSON file. Each Set rewrites the whole
// file; the last writer wins, which matches the single-user storage model this
// service was built around. The mutex only guards the file handle against
// interleaved writes inside one process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates the parent directory if needed. The file itself appears on
// first write.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create storage directory")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", err
	}
	return data[key], nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		// A corrupt file is replaced rather than kept broken.
		data = map[string]string{}
	}
	data[key] = value
	return s.write(data)
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	delete(data, key)
	return s.write(data)
}

func (s *FileStore) read() (map[string]string, error) {
	blob, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrap(err, "failed to read storage file")
	}
	data := map[string]string{}
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, errors.Wrap(err, "failed to parse storage file")
	}
	return data, nil
}

func (s *FileStore) write(data map[string]string) error {
	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode storage file")
	}
	if err := os.WriteFile(s.path, blob, 0o600); err != nil {
		return errors.Wrap(err, "failed to write storage file")
	}
	return nil
}
