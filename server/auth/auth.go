// Package auth provides interfaces and types for authentication handlers.
package auth

import (
	"encoding/json"
	"time"

	"github.com/sycs/chat/server/store/types"
)

// AuthHandler is the interface which auth providers must implement.
type AuthHandler interface {
	// Init initializes the handler from the config section.
	Init(jsonconf json.RawMessage, name string) error

	// AddRecord adds a persistent authentication record to the database.
	AddRecord(rec *Rec, secret []byte) (*Rec, error)

	// UpdateRecord updates an existing record with new credentials.
	UpdateRecord(rec *Rec, secret []byte) (*Rec, error)

	// Authenticate verifies the secret and returns the authentication record.
	Authenticate(secret []byte) (*Rec, error)

	// GenSecret generates a new secret (token) for the given record, if supported.
	GenSecret(rec *Rec) ([]byte, time.Time, error)

	// IsUnique verifies if the provided secret can be considered unique by
	// the authentication scheme.
	IsUnique(secret []byte) (bool, error)
}

// Rec is an authentication record.
type Rec struct {
	// User who owns the record.
	Uid types.Uid `json:"uid,omitempty"`
	// Time when the record expires.
	Lifetime time.Duration `json:"lifetime,omitempty"`
}

// Err is a composite error: the error itself and the reason which caused it.
type Err struct {
	reason error
	err    error
}

// NewErr creates a new composite error.
func NewErr(reason, err error) Err {
	return Err{reason: reason, err: err}
}

// IsError checks if the error is set.
func (a Err) IsError() bool {
	return a.reason != nil
}

// Error returns the wrapped error message.
func (a Err) Error() string {
	if a.err == nil {
		return ""
	}
	return a.err.Error()
}

// Reason returns the error cause.
func (a Err) Reason() error {
	return a.reason
}
