package session

import (
	"log"
	"net/http"

	"adminpanel/internal/dialog"

	"github.com/gorilla/sessions"
)

const (
	SessionName = "panel-session"

	pendingDeletePrefix = "pending_delete_"
)

type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string, maxAge int) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

func (m *Manager) Get(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, SessionName)
}

// writable returns the request's session for an update. A cookie that no
// longer decodes (for example after the secret rotated) yields the fresh
// session gorilla hands back, and saving it replaces the stale cookie.
func (m *Manager) writable(r *http.Request) (*sessions.Session, error) {
	session, err := m.Get(r)
	if session == nil {
		return nil, err
	}
	if err != nil {
		log.Printf("Discarding unreadable session: %v", err)
	}
	return session, nil
}

func (m *Manager) PendingDelete(r *http.Request, kind dialog.Kind) (string, bool) {
	session, err := m.Get(r)
	if err != nil {
		return "", false
	}

	id, ok := session.Values[pendingDeletePrefix+string(kind)].(string)
	return id, ok
}

func (m *Manager) SetPendingDelete(w http.ResponseWriter, r *http.Request, kind dialog.Kind, id string) error {
	session, err := m.writable(r)
	if err != nil {
		return err
	}

	session.Values[pendingDeletePrefix+string(kind)] = id
	return session.Save(r, w)
}

func (m *Manager) ClearPendingDelete(w http.ResponseWriter, r *http.Request, kind dialog.Kind) error {
	session, err := m.writable(r)
	if err != nil {
		return err
	}

	delete(session.Values, pendingDeletePrefix+string(kind))
	return session.Save(r, w)
}

// Cell exposes one dialog's pending id as a dialog.Cell bound to the
// current request. Writes must happen before the response body is written.
func (m *Manager) Cell(w http.ResponseWriter, r *http.Request, kind dialog.Kind) dialog.Cell {
	return &cell{m: m, w: w, r: r, kind: kind}
}

type cell struct {
	m    *Manager
	w    http.ResponseWriter
	r    *http.Request
	kind dialog.Kind
}

func (c *cell) Load() (string, bool) {
	return c.m.PendingDelete(c.r, c.kind)
}

func (c *cell) Store(id string) error {
	return c.m.SetPendingDelete(c.w, c.r, c.kind, id)
}

func (c *cell) Clear() error {
	return c.m.ClearPendingDelete(c.w, c.r, c.kind)
}
