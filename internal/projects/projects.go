// Package projects persists saved pages as a single JSON list, the way the browser version
// kept them in local storage.
package projects

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Storage keys shared by every Store.
const (
	KeyProjects = "my_projects"
	KeyLogo     = "project_logo"
)

const (
	DefaultName = "Novo Projeto"
	StatusDraft = "Rascunho"
)

var ErrNotFound = errors.New("projects: not found")

// Project is one saved page. Data holds the editor snapshot verbatim.
type Project struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Industry     string          `json:"industry"`
	Style        string          `json:"style"`
	Status       string          `json:"status"`
	LastModified time.Time       `json:"lastModified"`
	Data         json.RawMessage `json:"data,omitempty"`
}

// Store is the persistence port used by the dashboard, the editor and the CLI.
type Store interface {
	Load(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id int64) (Project, error)
	// Save upserts p by id. A zero id creates a new record at the head of the list.
	Save(ctx context.Context, p Project) (Project, error)
	Delete(ctx context.Context, id int64) error
	LoadLogo(ctx context.Context) (string, error)
	SaveLogo(ctx context.Context, dataURI string) error
}

// Option customises a store.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	now     func() time.Time
	onWrite func(op string)
}

// WithLogger sets the logger used to report unreadable data.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock overrides the time source used for ids and LastModified.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithWriteObserver is called with "save", "delete" or "logo" after each successful write.
func WithWriteObserver(fn func(op string)) Option {
	return func(o *options) {
		o.onWrite = fn
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) wrote(op string) {
	if o.onWrite != nil {
		o.onWrite(op)
	}
}

// decodeList treats absent or malformed data as an empty list.
func (o options) decodeList(raw string) []Project {
	if raw == "" {
		return nil
	}
	var list []Project
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		o.logger.Warn("discarding unreadable project list", zap.Error(err), zap.Int("bytes", len(raw)))
		return nil
	}
	return list
}

// upsert applies Save semantics to list and returns the new list and the stored record.
func (o options) upsert(list []Project, p Project) ([]Project, Project) {
	now := o.now()
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	p.LastModified = now

	if p.ID != 0 {
		for i := range list {
			if list[i].ID == p.ID {
				out := append([]Project(nil), list...)
				out[i] = p
				return out, p
			}
		}
	} else {
		p.ID = now.UnixMilli()
		for taken(list, p.ID) {
			p.ID++
		}
	}
	return append([]Project{p}, list...), p
}

func taken(list []Project, id int64) bool {
	for _, p := range list {
		if p.ID == id {
			return true
		}
	}
	return false
}

func remove(list []Project, id int64) ([]Project, bool) {
	for i, p := range list {
		if p.ID == id {
			out := make([]Project, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...), true
		}
	}
	return list, false
}

func find(list []Project, id int64) (Project, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
