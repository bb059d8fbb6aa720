package theme

import (
	"net/http"
	"sync"
	"time"
)

const cookieMaxAge = 365 * 24 * time.Hour

// CookieStore keeps values in origin-scoped cookies on the browser.
type CookieStore struct {
	r *http.Request
	w http.ResponseWriter
}

func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{r: r, w: w}
}

func (s *CookieStore) Get(key string) (string, bool) {
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// Set writes the cookie readable by the page script so it can apply the
// theme before first paint.
func (s *CookieStore) Set(key, value string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}
