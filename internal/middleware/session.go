package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/oklog/ulid/v2"
)

const (
	defaultSessionCookie   = "criadorlp_session"
	defaultSessionLifetime = 30 * 24 * time.Hour
)

// ErrInvalidConfig indicates the session store was initialised with missing or invalid options.
var ErrInvalidConfig = errors.New("session: invalid config")

// SessionData is what the signed cookie carries. Editor state stays on the server keyed by ID.
type SessionData struct {
	ID        string    `json:"id"`
	CSRFToken string    `json:"csrf,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionConfig controls cookie encoding.
type SessionConfig struct {
	CookieName string
	HashKey    []byte
	BlockKey   []byte
	Secure     bool
	Lifetime   time.Duration
	Now        func() time.Time
}

// Sessions decodes and persists SessionData via signed (and optionally encrypted) cookies.
type Sessions struct {
	cfg   SessionConfig
	codec *securecookie.SecureCookie
}

// NewSessions constructs a cookie codec from cfg.
func NewSessions(cfg SessionConfig) (*Sessions, error) {
	if len(cfg.HashKey) == 0 {
		return nil, fmt.Errorf("%w: hash key is required", ErrInvalidConfig)
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultSessionCookie
	}
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = defaultSessionLifetime
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	codec := securecookie.New(cfg.HashKey, cfg.BlockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(cfg.Lifetime.Seconds()))
	return &Sessions{cfg: cfg, codec: codec}, nil
}

// GenerateKey returns a random key of n bytes for local runs without configured keys.
func GenerateKey(n int) []byte {
	return securecookie.GenerateRandomKey(n)
}

// Middleware loads the session or starts a new one, writing the cookie before the handler runs.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd, ok := s.load(r)
		if !ok {
			sd = &SessionData{
				ID:        ulid.Make().String(),
				CSRFToken: newCSRFToken(),
				CreatedAt: s.cfg.Now().UTC(),
			}
			if err := s.write(w, sd); err != nil {
				WriteError(w, r, http.StatusInternalServerError, "session unavailable")
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sd)))
	})
}

func (s *Sessions) load(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(s.cfg.CookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	var sd SessionData
	if err := s.codec.Decode(s.cfg.CookieName, c.Value, &sd); err != nil || sd.ID == "" || sd.CSRFToken == "" {
		return nil, false
	}
	return &sd, true
}

func (s *Sessions) write(w http.ResponseWriter, sd *SessionData) error {
	encoded, err := s.codec.Encode(s.cfg.CookieName, sd)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.cfg.Lifetime.Seconds()),
	})
	return nil
}

type sessionKey struct{}

// GetSession returns the request's session, or an empty one outside the middleware.
func GetSession(r *http.Request) *SessionData {
	if sd, ok := r.Context().Value(sessionKey{}).(*SessionData); ok && sd != nil {
		return sd
	}
	return &SessionData{}
}
