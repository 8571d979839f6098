// Package basic implements password authentication: the secret is a
// "login:password" string, the password is stored as a bcrypt hash.
package basic

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sycs/chat/server/auth"
	"github.com/sycs/chat/server/store"
	"github.com/sycs/chat/server/store/types"
)

// BasicAuth is the handler for password authentication.
type BasicAuth struct {
	name  string
	users store.UsersPersistenceInterface
	// Minimum password length to accept.
	minPasswordLength int
}

const defaultMinPasswordLength = 6

// New creates a handler backed by the given user persistence.
func New(users store.UsersPersistenceInterface) *BasicAuth {
	return &BasicAuth{users: users}
}

func parseSecret(secret string) (uname, password string, err error) {
	splitAt := strings.Index(secret, ":")
	if splitAt < 1 {
		err = types.ErrMalformed
		return
	}

	uname = strings.ToLower(secret[:splitAt])
	password = secret[splitAt+1:]

	return
}

// Init initializes the basic authenticator.
func (a *BasicAuth) Init(jsonconf json.RawMessage, name string) error {
	if a.name != "" {
		return errors.New("auth_basic: already initialized as " + a.name + "; " + name)
	}

	type configType struct {
		MinPasswordLength int `json:"min_password_length"`
	}
	var config configType
	if len(jsonconf) > 0 {
		if err := json.Unmarshal(jsonconf, &config); err != nil {
			return errors.New("auth_basic: failed to parse config: " + err.Error())
		}
	}

	a.name = name
	a.minPasswordLength = config.MinPasswordLength
	if a.minPasswordLength <= 0 {
		a.minPasswordLength = defaultMinPasswordLength
	}

	return nil
}

// AddRecord adds a basic authentication record to DB.
func (a *BasicAuth) AddRecord(rec *auth.Rec, secret []byte) (*auth.Rec, error) {
	uname, password, fail := parseSecret(string(secret))
	if fail != nil {
		return nil, fail
	}

	if len(password) < a.minPasswordLength {
		return nil, types.ErrMalformed
	}

	passhash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	var expires time.Time
	if rec.Lifetime > 0 {
		expires = time.Now().Add(rec.Lifetime).UTC().Round(time.Millisecond)
	}
	if err = a.users.AddAuthRecord(rec.Uid, a.name, uname, passhash, expires); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateRecord updates the password of an existing basic auth record.
func (a *BasicAuth) UpdateRecord(rec *auth.Rec, secret []byte) (*auth.Rec, error) {
	uname, password, fail := parseSecret(string(secret))
	if fail != nil {
		return nil, fail
	}

	storedUid, _, _, err := a.users.GetAuthRecord(a.name, uname)
	if err != nil {
		return nil, err
	}
	if storedUid != rec.Uid {
		return nil, types.ErrFailed
	}
	if len(password) < a.minPasswordLength {
		return nil, types.ErrMalformed
	}
	passhash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, types.ErrInternal
	}
	var expires time.Time
	if rec.Lifetime > 0 {
		expires = time.Now().Add(rec.Lifetime).UTC().Round(time.Millisecond)
	}
	if err = a.users.UpdateAuthRecord(rec.Uid, a.name, uname, passhash, expires); err != nil {
		return nil, err
	}
	return rec, nil
}

// Authenticate checks login and password.
func (a *BasicAuth) Authenticate(secret []byte) (*auth.Rec, error) {
	uname, password, fail := parseSecret(string(secret))
	if fail != nil {
		return nil, fail
	}

	uid, passhash, expires, err := a.users.GetAuthRecord(a.name, uname)
	if err != nil {
		return nil, err
	} else if uid.IsZero() {
		// Invalid login.
		return nil, types.ErrFailed
	} else if !expires.IsZero() && expires.Before(time.Now()) {
		// The record has expired.
		return nil, types.ErrExpired
	}

	if err = bcrypt.CompareHashAndPassword(passhash, []byte(password)); err != nil {
		// Invalid password.
		return nil, types.ErrFailed
	}

	var lifetime time.Duration
	if !expires.IsZero() {
		lifetime = time.Until(expires)
	}
	return &auth.Rec{Uid: uid, Lifetime: lifetime}, nil
}

// IsUnique checks login uniqueness.
func (a *BasicAuth) IsUnique(secret []byte) (bool, error) {
	uname, _, fail := parseSecret(string(secret))
	if fail != nil {
		return false, fail
	}

	uid, _, _, err := a.users.GetAuthRecord(a.name, uname)
	if err != nil {
		if err == types.ErrNotFound {
			return true, nil
		}
		return false, err
	}
	if uid.IsZero() {
		return true, nil
	}
	return false, types.ErrDuplicate
}

// GenSecret is not supported, generates an error.
func (*BasicAuth) GenSecret(rec *auth.Rec) ([]byte, time.Time, error) {
	return nil, time.Time{}, types.ErrUnsupported
}
