package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"takeaway/internal/domain"
)

const (
	QueueFile   = "orders.json"
	HistoryFile = "customers.json"
)

type queueDocument struct {
	Version int           `json:"version"`
	Orders  []OrderRecord `json:"orders"`
}

type historyDocument struct {
	Version   int                      `json:"version"`
	Customers map[string][]OrderRecord `json:"customers"`
}

// FileStore keeps the queue and the history as two JSON documents in Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) LoadQueue(ctx context.Context) ([]*domain.Order, error) {
	var doc queueDocument
	found, err := s.read(QueueFile, &doc)
	if err != nil || !found {
		return []*domain.Order{}, err
	}
	if doc.Version != RecordVersion {
		return nil, fmt.Errorf("%w: %s has version %d", ErrUnsupportedVersion, QueueFile, doc.Version)
	}
	return decodeOrders(doc.Orders)
}

func (s *FileStore) LoadHistory(ctx context.Context) (map[string][]*domain.Order, error) {
	var doc historyDocument
	found, err := s.read(HistoryFile, &doc)
	if err != nil || !found {
		return map[string][]*domain.Order{}, err
	}
	if doc.Version != RecordVersion {
		return nil, fmt.Errorf("%w: %s has version %d", ErrUnsupportedVersion, HistoryFile, doc.Version)
	}
	return decodeHistory(doc.Customers)
}

func (s *FileStore) SaveQueue(ctx context.Context, queue []*domain.Order) error {
	return s.write(QueueFile, queueDocument{
		Version: RecordVersion,
		Orders:  encodeOrders(queue),
	})
}

func (s *FileStore) SaveHistory(ctx context.Context, history map[string][]*domain.Order) error {
	return s.write(HistoryFile, historyDocument{
		Version:   RecordVersion,
		Customers: encodeHistory(history),
	})
}

func (s *FileStore) read(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// write replaces the file through a rename so a failed save leaves the
// previous document intact.
func (s *FileStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.Dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.Dir, name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
