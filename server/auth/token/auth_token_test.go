package token

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sycs/chat/server/auth"
	"github.com/sycs/chat/server/store/types"
)

func tokenConfig(t *testing.T, key []byte, serial, expireIn int) json.RawMessage {
	conf, err := json.Marshal(map[string]interface{}{
		"key":        key,
		"serial_num": serial,
		"expire_in":  expireIn,
	})
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	return conf
}

func newTestAuth(t *testing.T) *Authenticator {
	ta := &Authenticator{}
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	if err := ta.Init(tokenConfig(t, key, 1, 3600), "token"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return ta
}

func TestInitRejectsBadConfig(t *testing.T) {
	// Key too short.
	ta := &Authenticator{}
	if err := ta.Init(tokenConfig(t, make([]byte, 16), 1, 3600), "token"); err == nil {
		t.Error("Expected error for a short key")
	}

	// Missing expiration.
	ta = &Authenticator{}
	if err := ta.Init(tokenConfig(t, make([]byte, 32), 1, 0), "token"); err == nil {
		t.Error("Expected error for zero expire_in")
	}

	// Double initialization.
	ta = newTestAuth(t)
	if err := ta.Init(tokenConfig(t, make([]byte, 32), 1, 3600), "token2"); err == nil {
		t.Error("Second Init must fail")
	}
}

func TestTokenRoundtrip(t *testing.T) {
	ta := newTestAuth(t)

	uid := types.Uid(12345)
	token, expires, err := ta.GenSecret(&auth.Rec{Uid: uid})
	if err != nil {
		t.Fatalf("GenSecret failed: %v", err)
	}
	if until := time.Until(expires); until < 59*time.Minute || until > time.Hour {
		t.Errorf("Unexpected expiration %v", expires)
	}

	rec, err := ta.Authenticate(token)
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if rec.Uid != uid {
		t.Errorf("Expected uid %v, got %v", uid, rec.Uid)
	}
	if rec.Lifetime <= 0 {
		t.Errorf("Expected positive remaining lifetime, got %v", rec.Lifetime)
	}
}

func TestTokenTampered(t *testing.T) {
	ta := newTestAuth(t)

	token, _, err := ta.GenSecret(&auth.Rec{Uid: types.Uid(12345)})
	if err != nil {
		t.Fatalf("GenSecret failed: %v", err)
	}

	// Flip a bit in the payload.
	token[0] ^= 0xFF
	if _, err = ta.Authenticate(token); err != types.ErrFailed {
		t.Errorf("Expected ErrFailed for tampered payload, got %v", err)
	}
	token[0] ^= 0xFF

	// Flip a bit in the signature.
	token[len(token)-1] ^= 0xFF
	if _, err = ta.Authenticate(token); err != types.ErrFailed {
		t.Errorf("Expected ErrFailed for tampered signature, got %v", err)
	}
}

func TestTokenTooShort(t *testing.T) {
	ta := newTestAuth(t)
	if _, err := ta.Authenticate([]byte("short")); err != types.ErrMalformed {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestTokenWrongSerial(t *testing.T) {
	ta := newTestAuth(t)

	// Same key, different serial number.
	other := &Authenticator{}
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	if err := other.Init(tokenConfig(t, key, 2, 3600), "token"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	token, _, err := other.GenSecret(&auth.Rec{Uid: types.Uid(12345)})
	if err != nil {
		t.Fatalf("GenSecret failed: %v", err)
	}
	if _, err = ta.Authenticate(token); err != types.ErrFailed {
		t.Errorf("Expected ErrFailed for serial mismatch, got %v", err)
	}
}

func TestTokenExpired(t *testing.T) {
	ta := newTestAuth(t)

	if _, _, err := ta.GenSecret(&auth.Rec{Uid: types.Uid(12345), Lifetime: -time.Minute}); err != types.ErrExpired {
		t.Errorf("Expected ErrExpired for negative lifetime, got %v", err)
	}

	// A token that expires within the grace window is rejected.
	token, _, err := ta.GenSecret(&auth.Rec{Uid: types.Uid(12345), Lifetime: 500 * time.Millisecond})
	if err != nil {
		t.Fatalf("GenSecret failed: %v", err)
	}
	if _, err = ta.Authenticate(token); err != types.ErrExpired {
		t.Errorf("Expected ErrExpired, got %v", err)
	}
}

func TestUnsupportedOperations(t *testing.T) {
	ta := newTestAuth(t)

	if _, err := ta.AddRecord(&auth.Rec{}, nil); err != types.ErrUnsupported {
		t.Errorf("AddRecord: expected ErrUnsupported, got %v", err)
	}
	if _, err := ta.UpdateRecord(&auth.Rec{}, nil); err != types.ErrUnsupported {
		t.Errorf("UpdateRecord: expected ErrUnsupported, got %v", err)
	}
	if _, err := ta.IsUnique(nil); err != types.ErrUnsupported {
		t.Errorf("IsUnique: expected ErrUnsupported, got %v", err)
	}
}
