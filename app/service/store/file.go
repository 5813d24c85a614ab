package store

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"rungoal/app/service/dialog"

	"github.com/samber/oops"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps one JSON line per user. The file is small (one
// record per user who ever set a goal) and rewritten whole on every
// mutation.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

type jsonLineItem struct {
	UserID     string            `json:"userId"`
	Attributes dialog.Attributes `json:"attributes"`
}

func NewFileStore(path string) (*FileStore, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, oops.Errorf("failed to create attributes file: %w", err)
	}
	defer file.Close()

	return &FileStore{path: path}, nil
}

func (s *FileStore) loadAll() (map[string]dialog.Attributes, error) {
	file, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, oops.Errorf("failed to open attributes file: %w", err)
	}
	defer file.Close()

	records := make(map[string]dialog.Attributes)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var item jsonLineItem
		if err = json.Unmarshal([]byte(line), &item); err != nil {
			return nil, oops.Errorf("failed to parse JSON line: %w", err)
		}

		records[item.UserID] = item.Attributes
	}

	if err = scanner.Err(); err != nil {
		return nil, oops.Errorf("error reading attributes file: %w", err)
	}

	return records, nil
}

func (s *FileStore) saveAll(records map[string]dialog.Attributes) error {
	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return oops.Errorf("failed to open attributes file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	for userID, attrs := range records {
		data, err := json.Marshal(jsonLineItem{
			UserID:     userID,
			Attributes: attrs,
		})
		if err != nil {
			return oops.Errorf("failed to marshal attributes: %w", err)
		}
		if _, err = writer.WriteString(string(data) + "\n"); err != nil {
			return oops.Errorf("failed to write attributes: %w", err)
		}
	}

	if err = writer.Flush(); err != nil {
		return oops.Errorf("failed to flush writer: %w", err)
	}

	return nil
}

func (s *FileStore) Load(_ context.Context, userID string) (dialog.Attributes, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.loadAll()
	if err != nil {
		return dialog.Attributes{}, err
	}

	attrs, ok := records[userID]
	if !ok {
		return dialog.Attributes{}, ErrNotFound
	}

	return attrs, nil
}

func (s *FileStore) Save(_ context.Context, userID string, attrs dialog.Attributes) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadAll()
	if err != nil {
		return err
	}

	records[userID] = attrs

	return s.saveAll(records)
}

func (s *FileStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadAll()
	if err != nil {
		return err
	}

	delete(records, userID)

	return s.saveAll(records)
}
