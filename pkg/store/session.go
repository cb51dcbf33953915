package store

import "time"

// LoginSession is the server-side state behind one browser session cookie.
// The cookie only carries the opaque token; everything else stays here.
type LoginSession struct {
	Token     string    `json:"token"`
	UserId    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore keeps login sessions between requests. Implementations live in
// internal/repository (in-process cache or redis).
type SessionStore interface {
	Save(session *LoginSession) error
	Get(token string) (*LoginSession, bool)
	Delete(token string) error
}
