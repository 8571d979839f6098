/******************************************************************************
 *
 *  Description :
 *
 *    Account management: signup, login, profile reads and updates.
 *
 *****************************************************************************/

package main

import (
	"time"

	"github.com/sycs/chat/server/auth"
	"github.com/sycs/chat/server/store"
	t "github.com/sycs/chat/server/store/types"
)

// Users manages user accounts.
type Users struct {
	store store.UsersPersistenceInterface
	basic auth.AuthHandler
	token auth.AuthHandler
}

// NewUsers creates the account component.
func NewUsers(persist store.UsersPersistenceInterface, basic, token auth.AuthHandler) *Users {
	return &Users{store: persist, basic: basic, token: token}
}

// Signup creates an account with a password login. The handle doubles as the
// login and is immutable after creation.
func (c *Users) Signup(handle, username, email, password string) (*t.User, error) {
	if !validHandle(handle) || !validUsername(username) || email == "" {
		return nil, t.ErrMalformed
	}

	user, err := c.store.Create(&t.User{
		Handle:   handle,
		Username: username,
		Email:    email,
	})
	if err != nil {
		return nil, err
	}

	_, err = c.basic.AddRecord(&auth.Rec{Uid: user.Uid()},
		[]byte(handle+":"+password))
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies a "login:password" secret and issues a bearer token.
func (c *Users) Login(secret string) (*t.User, string, time.Time, error) {
	rec, err := c.basic.Authenticate([]byte(secret))
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user, err := c.store.Get(rec.Uid)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, t.ErrNotFound
	}

	token, expires, err := c.token.GenSecret(rec)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	return user, string(token), expires, nil
}

// Authenticate resolves a bearer token into a principal.
func (c *Users) Authenticate(token string) (*Principal, error) {
	rec, err := c.token.Authenticate([]byte(token))
	if err != nil {
		return nil, err
	}

	user, err := c.store.Get(rec.Uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, t.ErrNotFound
	}

	return &Principal{
		Uid:      user.Uid(),
		Handle:   user.Handle,
		Username: user.Username,
	}, nil
}

// Get fetches a user's public profile.
func (c *Users) Get(id t.Uid) (*t.Profile, error) {
	user, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, t.ErrNotFound
	}
	return user.Profile(), nil
}

// Find resolves a user by handle or username.
func (c *Users) Find(handleOrUsername string) (*t.Profile, error) {
	user, err := c.store.Find(handleOrUsername)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, t.ErrNotFound
	}
	return user.Profile(), nil
}

// UpdateProfile changes the principal's own mutable profile fields. The
// handle is not among them.
func (c *Users) UpdateProfile(principal Principal, update map[string]interface{}) error {
	allowed := map[string]bool{
		"username":   true,
		"public":     true,
		"decoration": true,
	}
	filtered := make(map[string]interface{})
	for k, v := range update {
		if !allowed[k] {
			return t.ErrMalformed
		}
		filtered[k] = v
	}
	if len(filtered) == 0 {
		return t.ErrMalformed
	}
	if name, ok := filtered["username"].(string); ok && !validUsername(name) {
		return t.ErrMalformed
	}

	return c.store.Update(principal.Uid, filtered)
}
