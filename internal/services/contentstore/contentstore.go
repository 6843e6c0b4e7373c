package contentstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GeneratedContent is one generated blog article.
type GeneratedContent struct {
	ID        string
	FileName  string
	Content   string
	Topic     string
	CreatedAt time.Time
}

// Store persists generated content. Implementations must keep insertion order.
type Store interface {
	Append(ctx context.Context, record *GeneratedContent) (string, error)
	List(ctx context.Context) ([]GeneratedContent, error)
}

// StorageError wraps any failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("content store %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// FileName returns the display name of an article about topic created at t.
// Two articles on the same topic within the same millisecond share a name.
func FileName(topic string, t time.Time) string {
	return fmt.Sprintf("blog_%s_%d.md", topic, t.UnixMilli())
}

// Save appends an article to store and returns its file name.
func Save(ctx context.Context, store Store, content, topic string, now time.Time) (*GeneratedContent, error) {
	record := &GeneratedContent{
		FileName:  FileName(topic, now),
		Content:   content,
		Topic:     topic,
		CreatedAt: now,
	}
	if _, err := store.Append(ctx, record); err != nil {
		return nil, &StorageError{Op: "append", Err: err}
	}
	return record, nil
}

// MemoryStore keeps content for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records []GeneratedContent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append assigns record a new ID, stores a copy and returns the ID.
func (s *MemoryStore) Append(ctx context.Context, record *GeneratedContent) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	record.ID = uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	return record.ID, nil
}

// List returns a snapshot of all records in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]GeneratedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records), nil
}
