package token

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStore keeps the pair in a mode-0600 JSON file, the durable key-value
// analog of the mobile app's local storage.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// NewFileStore returns a store writing to path. An empty path resolves to
// <user config dir>/parkmobile/tokens.json.
func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "parkmobile", "tokens.json")
	}
	return &FileStore{path: path, logger: logger}, nil
}

type fileRecord struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Save writes the pair atomically and verifies the readback.
func (s *FileStore) Save(_ context.Context, pair Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(pair); err != nil {
		s.logger.Warn("token: persist failed", zap.Error(err))
		return
	}

	stored, err := s.read()
	if err != nil || stored == nil || *stored != pair {
		s.logger.Warn("token: readback verification failed", zap.Error(err))
	}
}

// Load returns the stored pair, or nil when absent or unreadable.
func (s *FileStore) Load(_ context.Context) *Pair {
	s.mu.Lock()
	defer s.mu.Unlock()

	pair, err := s.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("token: read failed", zap.Error(err))
		}
		return nil
	}
	return pair
}

// Clear removes the token file. Missing file is not an error.
func (s *FileStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("token: clear failed", zap.Error(err))
	}
}

func (s *FileStore) write(pair Pair) error {
	data, err := json.Marshal(fileRecord{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) read() (*Pair, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if rec.AccessToken == "" || rec.RefreshToken == "" {
		return nil, nil
	}
	return &Pair{AccessToken: rec.AccessToken, RefreshToken: rec.RefreshToken}, nil
}
