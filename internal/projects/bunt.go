package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/buntdb"
)

// BuntStore keeps the project list in a buntdb file. Path ":memory:" keeps it in RAM.
type BuntStore struct {
	db   *buntdb.DB
	opts options
}

// OpenBunt opens (or creates) the store at path.
func OpenBunt(path string, opts ...Option) (*BuntStore, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("projects: open %s: %w", path, err)
	}
	return &BuntStore{db: db, opts: newOptions(opts)}, nil
}

// Close flushes and closes the underlying file.
func (s *BuntStore) Close() error {
	return s.db.Close()
}

// Compact rewrites the append-only file down to the live keys.
func (s *BuntStore) Compact() error {
	if err := s.db.Shrink(); err != nil && !errors.Is(err, buntdb.ErrShrinkInProcess) {
		return fmt.Errorf("projects: shrink: %w", err)
	}
	return nil
}

func (s *BuntStore) Load(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var list []Project
	err := s.db.View(func(tx *buntdb.Tx) error {
		raw, err := getOrEmpty(tx, KeyProjects)
		if err != nil {
			return err
		}
		list = s.opts.decodeList(raw)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("projects: load: %w", err)
	}
	return list, nil
}

func (s *BuntStore) Get(ctx context.Context, id int64) (Project, error) {
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

func (s *BuntStore) Save(ctx context.Context, p Project) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}
	var saved Project
	err := s.db.Update(func(tx *buntdb.Tx) error {
		raw, err := getOrEmpty(tx, KeyProjects)
		if err != nil {
			return err
		}
		var list []Project
		list, saved = s.opts.upsert(s.opts.decodeList(raw), p)
		return setJSON(tx, KeyProjects, list)
	})
	if err != nil {
		return Project{}, fmt.Errorf("projects: save: %w", err)
	}
	s.opts.wrote("save")
	return saved, nil
}

func (s *BuntStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *buntdb.Tx) error {
		raw, err := getOrEmpty(tx, KeyProjects)
		if err != nil {
			return err
		}
		list, ok := remove(s.opts.decodeList(raw), id)
		if !ok {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return setJSON(tx, KeyProjects, list)
	})
	if err != nil {
		return fmt.Errorf("projects: delete: %w", err)
	}
	s.opts.wrote("delete")
	return nil
}

func (s *BuntStore) LoadLogo(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var logo string
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		logo, err = getOrEmpty(tx, KeyLogo)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("projects: load logo: %w", err)
	}
	return logo, nil
}

func (s *BuntStore) SaveLogo(ctx context.Context, dataURI string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *buntdb.Tx) error {
		if dataURI == "" {
			_, err := tx.Delete(KeyLogo)
			if errors.Is(err, buntdb.ErrNotFound) {
				return nil
			}
			return err
		}
		_, _, err := tx.Set(KeyLogo, dataURI, nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("projects: save logo: %w", err)
	}
	s.opts.wrote("logo")
	return nil
}

func getOrEmpty(tx *buntdb.Tx, key string) (string, error) {
	v, err := tx.Get(key)
	if errors.Is(err, buntdb.ErrNotFound) {
		return "", nil
	}
	return v, err
}

func setJSON(tx *buntdb.Tx, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, _, err = tx.Set(key, string(b), nil)
	return err
}
