package main

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/sycs/chat/server/auth"
	"github.com/sycs/chat/server/auth/mock_auth"
	"github.com/sycs/chat/server/store/mock_store"
	"github.com/sycs/chat/server/store/types"
)

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	basic := mock_auth.NewMockAuthHandler(ctrl)
	token := mock_auth.NewMockAuthHandler(ctrl)
	c := NewUsers(users, basic, token)

	uid := types.Uid(1)
	users.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(user *types.User) (*types.User, error) {
			if user.Handle != "alice" || user.Username != "Alice" {
				t.Errorf("User fields wrong: %+v", user)
			}
			user.SetUid(uid)
			return user, nil
		})
	basic.EXPECT().AddRecord(gomock.Any(), []byte("alice:hunter22")).DoAndReturn(
		func(rec *auth.Rec, secret []byte) (*auth.Rec, error) {
			if rec.Uid != uid {
				t.Errorf("Auth record uid wrong: %v", rec.Uid)
			}
			return rec, nil
		})

	user, err := c.Signup("alice", "Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Uid() != uid {
		t.Errorf("Expected uid %v, got %v", uid, user.Uid())
	}
}

func TestSignupInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	basic := mock_auth.NewMockAuthHandler(ctrl)
	token := mock_auth.NewMockAuthHandler(ctrl)
	c := NewUsers(users, basic, token)

	testCases := []struct {
		name                            string
		handle, username, email, passwd string
	}{
		{"bad handle", "Not Valid", "Alice", "a@example.com", "x"},
		{"blank username", "alice", "  ", "a@example.com", "x"},
		{"missing email", "alice", "Alice", "", "x"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.Signup(tc.handle, tc.username, tc.email, tc.passwd); err != types.ErrMalformed {
				t.Errorf("Expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	basic := mock_auth.NewMockAuthHandler(ctrl)
	token := mock_auth.NewMockAuthHandler(ctrl)
	c := NewUsers(users, basic, token)

	uid := types.Uid(1)
	expires := time.Now().Add(14 * 24 * time.Hour).UTC().Round(time.Millisecond)
	rec := &auth.Rec{Uid: uid}

	basic.EXPECT().Authenticate([]byte("alice:hunter22")).Return(rec, nil)
	users.EXPECT().Get(uid).Return(testUser(uid, "alice"), nil)
	token.EXPECT().GenSecret(rec).Return([]byte("tok-abc"), expires, nil)

	user, tok, exp, err := c.Login("alice:hunter22")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Uid() != uid || tok != "tok-abc" || exp != expires {
		t.Errorf("Login result wrong: %v, '%s', %v", user.Uid(), tok, exp)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	basic := mock_auth.NewMockAuthHandler(ctrl)
	token := mock_auth.NewMockAuthHandler(ctrl)
	c := NewUsers(users, basic, token)

	basic.EXPECT().Authenticate(gomock.Any()).Return(nil, types.ErrFailed)

	if _, _, _, err := c.Login("alice:wrong"); err != types.ErrFailed {
		t.Errorf("Expected ErrFailed, got %v", err)
	}
}

func TestAuthenticateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	basic := mock_auth.NewMockAuthHandler(ctrl)
	token := mock_auth.NewMockAuthHandler(ctrl)
	c := NewUsers(users, basic, token)

	uid := types.Uid(1)
	token.EXPECT().Authenticate([]byte("tok-abc")).Return(&auth.Rec{Uid: uid}, nil)
	users.EXPECT().Get(uid).Return(testUser(uid, "alice"), nil)

	principal, err := c.Authenticate("tok-abc")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if principal.Uid != uid || principal.Handle != "alice" {
		t.Errorf("Principal wrong: %+v", principal)
	}

	// Expired token.
	token.EXPECT().Authenticate([]byte("tok-old")).Return(nil, types.ErrExpired)
	if _, err = c.Authenticate("tok-old"); err != types.ErrExpired {
		t.Errorf("Expected ErrExpired, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	basic := mock_auth.NewMockAuthHandler(ctrl)
	token := mock_auth.NewMockAuthHandler(ctrl)
	c := NewUsers(users, basic, token)

	me := Principal{Uid: types.Uid(1)}

	users.EXPECT().Update(me.Uid, gomock.Any()).DoAndReturn(
		func(uid types.Uid, update map[string]interface{}) error {
			if update["username"] != "Alice B" {
				t.Errorf("Update must carry the new username, got %v", update)
			}
			return nil
		})
	if err := c.UpdateProfile(me, map[string]interface{}{"username": "Alice B"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The handle is immutable.
	if err := c.UpdateProfile(me, map[string]interface{}{"handle": "eve"}); err != types.ErrMalformed {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
	// An empty update is rejected.
	if err := c.UpdateProfile(me, map[string]interface{}{}); err != types.ErrMalformed {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}
