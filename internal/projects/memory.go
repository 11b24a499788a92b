package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store. It keeps the same serialized form as BuntStore so
// both behave alike on unreadable data.
type MemoryStore struct {
	mu   sync.Mutex
	kv   map[string]string
	opts options
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{kv: map[string]string{}, opts: newOptions(opts)}
}

// SetRaw replaces the stored value under key, bypassing encoding.
func (s *MemoryStore) SetRaw(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv[key] = value
}

func (s *MemoryStore) Load(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.decodeList(s.kv[KeyProjects]), nil
}

func (s *MemoryStore) Get(ctx context.Context, id int64) (Project, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return Project{}, err
	}
	p, ok := find(list, id)
	if !ok {
		return Project{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return p, nil
}

func (s *MemoryStore) Save(ctx context.Context, p Project) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}
	s.mu.Lock()
	list, saved := s.opts.upsert(s.opts.decodeList(s.kv[KeyProjects]), p)
	err := s.put(list)
	s.mu.Unlock()
	if err != nil {
		return Project{}, err
	}
	s.opts.wrote("save")
	return saved, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	list, ok := remove(s.opts.decodeList(s.kv[KeyProjects]), id)
	var err error
	if ok {
		err = s.put(list)
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("projects: delete: %w: %d", ErrNotFound, id)
	}
	if err != nil {
		return err
	}
	s.opts.wrote("delete")
	return nil
}

func (s *MemoryStore) LoadLogo(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv[KeyLogo], nil
}

func (s *MemoryStore) SaveLogo(ctx context.Context, dataURI string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if dataURI == "" {
		delete(s.kv, KeyLogo)
	} else {
		s.kv[KeyLogo] = dataURI
	}
	s.mu.Unlock()
	s.opts.wrote("logo")
	return nil
}

func (s *MemoryStore) put(list []Project) error {
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("projects: encode: %w", err)
	}
	s.kv[KeyProjects] = string(b)
	return nil
}
