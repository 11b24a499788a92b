package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/googleapis/gax-go/v2"
	"github.com/oklog/ulid/v2"
)

// Sink keeps a copy of every packaged archive and returns the key it was stored under.
type Sink interface {
	Keep(ctx context.Context, a Archive) (string, error)
}

// NopSink keeps nothing.
type NopSink struct{}

func (NopSink) Keep(context.Context, Archive) (string, error) { return "", nil }

// ObjectKey returns exports/<ulid>/<filename>.
func ObjectKey(filename string) string {
	return path.Join("exports", ulid.Make().String(), path.Base(filename))
}

// DirSink writes archives below Root.
type DirSink struct {
	Root string
}

func (s DirSink) Keep(ctx context.Context, a Archive) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	root := strings.TrimSpace(s.Root)
	if root == "" {
		return "", errors.New("export dir sink: root is required")
	}
	key := ObjectKey(a.Filename)
	dst := filepath.Join(root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("export dir sink: %w", err)
	}
	if err := os.WriteFile(dst, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("export dir sink: %w", err)
	}
	return key, nil
}

// Object keys are unique per export, so retrying an upload never overwrites another archive.
var uploadBackoff = gax.Backoff{
	Initial:    200 * time.Millisecond,
	Max:        5 * time.Second,
	Multiplier: 2,
}

// GCSSink uploads archives to a Cloud Storage bucket.
type GCSSink struct {
	client *gcs.Client
	bucket string
}

// NewGCSSink constructs a sink backed by the provided Cloud Storage client.
func NewGCSSink(client *gcs.Client, bucket string) (*GCSSink, error) {
	if client == nil {
		return nil, errors.New("export gcs sink: client is required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("export gcs sink: bucket is required")
	}
	return &GCSSink{client: client, bucket: bucket}, nil
}

func (s *GCSSink) Keep(ctx context.Context, a Archive) (string, error) {
	if s == nil || s.client == nil {
		return "", errors.New("export gcs sink: client is not initialised")
	}
	key := ObjectKey(a.Filename)
	obj := s.client.Bucket(s.bucket).Object(key).Retryer(
		gcs.WithBackoff(uploadBackoff),
		gcs.WithPolicy(gcs.RetryAlways),
	)
	w := obj.NewWriter(ctx)
	w.ContentType = "application/zip"
	w.ContentDisposition = fmt.Sprintf("attachment; filename=%q", a.Filename)
	if _, err := w.Write(a.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("export gcs sink: write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("export gcs sink: close %s: %w", key, err)
	}
	return key, nil
}
