package session

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"golang.org/x/crypto/hkdf"
)

const (
	CookieName = "shipdesk_session"

	keyLen = 32
	maxAge = 12 * 60 * 60
)

// Keys выводит из SESSION_SECRET два независимых ключа:
// подпись (HMAC) и шифрование (AES-256) cookie.
func Keys(secret string) (authKey, encKey []byte, err error) {
	authKey, err = derive(secret, "shipdesk cookie auth")
	if err != nil {
		return nil, nil, err
	}
	encKey, err = derive(secret, "shipdesk cookie enc")
	if err != nil {
		return nil, nil, err
	}
	return authKey, encKey, nil
}

func derive(secret, info string) ([]byte, error) {
	key := make([]byte, keyLen)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive session key %q: %w", info, err)
	}
	return key, nil
}

// NewCookieStore: токен бэкенда лежит в cookie, поэтому она шифруется
func NewCookieStore(secret string, secure bool) (sessions.Store, error) {
	authKey, encKey, err := Keys(secret)
	if err != nil {
		return nil, err
	}

	store := cookie.NewStore(authKey, encKey)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
