package handlers

import (
	"crypto/sha1"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/pbkdf2"

	"github.com/spencer-p/suntimes/pkg/metrics"
)

const (
	sessionName     = "suntimes"
	sessionLocation = "location"
	sessionClient   = "client"
	// See https://developer.chrome.com/blog/cookie-max-age-expires.
	defaultMaxAge = 60 * 60 * 24 * 400 // 400 days in seconds.
)

// NewCookieStore returns a session store that signs cookies with sessionKey
// and encrypts them with a key derived from password.
func NewCookieStore(sessionKey, password string, secure bool) *sessions.CookieStore {
	store := &sessions.CookieStore{
		Codecs: securecookie.CodecsFromPairs(
			[]byte(sessionKey),
			encryptionKey(password),
		),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   defaultMaxAge,
			Secure:   secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}
	store.MaxAge(defaultMaxAge)
	return store
}

func encryptionKey(password string) []byte {
	return pbkdf2.Key([]byte(password), []byte{}, 4096, 32, sha1.New)
}

// session loads the caller's session, giving it a client ID on first use.
// A cookie that fails to decode is replaced by a fresh session.
func (s *Server) session(r *http.Request) (*sessions.Session, string) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		log.Printf("Discarding undecodable session: %v", err)
	}

	client, ok := session.Values[sessionClient].(string)
	metrics.ObserveSession(ok)
	if !ok {
		client = hex.EncodeToString(securecookie.GenerateRandomKey(16))
		session.Values[sessionClient] = client
	}
	return session, client
}

func lastLocation(session *sessions.Session) string {
	loc, _ := session.Values[sessionLocation].(string)
	return loc
}
