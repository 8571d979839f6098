/******************************************************************************
 *
 *  Description :
 *
 *    Wire messages exchanged with clients and constructors for standard
 *    control responses.
 *
 *****************************************************************************/

package main

import (
	"net/http"
	"time"

	t "github.com/sycs/chat/server/store/types"
)

// Principal is the authenticated identity threaded as an explicit argument
// through every operation which requires one.
type Principal struct {
	Uid      t.Uid
	Handle   string
	Username string
}

// MsgClientLogin is a client request to authenticate the connection.
type MsgClientLogin struct {
	// Message id.
	Id string `json:"id,omitempty"`
	// Authentication scheme.
	Scheme string `json:"scheme,omitempty"`
	// Scheme-specific credential.
	Secret string `json:"secret"`
}

// MsgClientJoin is a request to subscribe to a room.
type MsgClientJoin struct {
	Id   string `json:"id,omitempty"`
	Room string `json:"room"`
}

// MsgClientLeave is a request to drop a room subscription.
type MsgClientLeave struct {
	Id   string `json:"id,omitempty"`
	Room string `json:"room"`
}

// ClientComMessage is a wrapper for client messages.
type ClientComMessage struct {
	Login *MsgClientLogin `json:"login,omitempty"`
	Join  *MsgClientJoin  `json:"join,omitempty"`
	Leave *MsgClientLeave `json:"leave,omitempty"`

	// Message timestamp, set at the time of arrival.
	timestamp time.Time
}

// MsgServerCtrl is a server control message {ctrl}.
type MsgServerCtrl struct {
	Id     string      `json:"id,omitempty"`
	Code   int         `json:"code"`
	Text   string      `json:"text,omitempty"`
	Params interface{} `json:"params,omitempty"`

	Timestamp time.Time `json:"ts"`
}

// MsgServerEvent is a single fanout event {evt} pushed to room subscribers.
type MsgServerEvent struct {
	// Room the event belongs to.
	Room string `json:"room"`
	// Event name, one of the evt* constants.
	What string `json:"what"`
	// Event payload: the enriched entity, or a minimal {id} for deletions.
	Data interface{} `json:"data,omitempty"`

	Timestamp time.Time `json:"ts"`
}

// ServerComMessage is a wrapper for server-side messages.
type ServerComMessage struct {
	Ctrl  *MsgServerCtrl  `json:"ctrl,omitempty"`
	Event *MsgServerEvent `json:"evt,omitempty"`
}

// Names of the fanout events.
const (
	evtMessagePosted    = "message-posted"
	evtMessageEdited    = "message-edited"
	evtMessageDeleted   = "message-deleted"
	evtDMMessagePosted  = "dm-message-posted"
	evtDMMessageDeleted = "dm-message-deleted"
)

// NoErr indicates successful completion (200).
func NoErr(id string, ts time.Time) *ServerComMessage {
	return NoErrParams(id, nil, ts)
}

// NoErrParams indicates successful completion with parameters (200).
func NoErrParams(id string, params interface{}, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusOK,
		Text:      "ok",
		Params:    params,
		Timestamp: ts}}
}

// NoErrCreated indicates successful creation of an object (201).
func NoErrCreated(id string, params interface{}, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusCreated,
		Text:      "created",
		Params:    params,
		Timestamp: ts}}
}

// NoErrShutdown means the server is shutting down (205).
func NoErrShutdown(ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Code:      http.StatusResetContent,
		Text:      "server shutdown",
		Timestamp: ts}}
}

// ErrMalformed request malformed (400).
func ErrMalformed(id string, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusBadRequest,
		Text:      "malformed",
		Timestamp: ts}}
}

// ErrAuthRequired authentication required (401).
func ErrAuthRequired(id string, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusUnauthorized,
		Text:      "authentication required",
		Timestamp: ts}}
}

// ErrAuthFailed authentication failed (401).
func ErrAuthFailed(id string, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusUnauthorized,
		Text:      "authentication failed",
		Timestamp: ts}}
}

// ErrPermissionDenied the principal lacks rights for the action (403).
func ErrPermissionDenied(id string, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusForbidden,
		Text:      "denied",
		Timestamp: ts}}
}

// ErrNotFound the referenced object is not found (404).
func ErrNotFound(id string, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusNotFound,
		Text:      "not found",
		Timestamp: ts}}
}

// ErrOperationNotAllowed the requested operation is not allowed (405).
func ErrOperationNotAllowed(id string, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusMethodNotAllowed,
		Text:      "operation not allowed",
		Timestamp: ts}}
}

// ErrAlreadyExists the object already exists (409).
func ErrAlreadyExists(id string, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusConflict,
		Text:      "already exists",
		Timestamp: ts}}
}

// ErrUnknown database or other server error (500).
func ErrUnknown(id string, ts time.Time) *ServerComMessage {
	return &ServerComMessage{Ctrl: &MsgServerCtrl{
		Id:        id,
		Code:      http.StatusInternalServerError,
		Text:      "internal error",
		Timestamp: ts}}
}

// decodeStoreError converts a storage error into a wire response.
func decodeStoreError(err error, id string, ts time.Time) *ServerComMessage {
	if err == nil {
		return NoErr(id, ts)
	}

	storeErr, ok := err.(t.StoreError)
	if !ok {
		return ErrUnknown(id, ts)
	}

	switch storeErr {
	case t.ErrMalformed:
		return ErrMalformed(id, ts)
	case t.ErrFailed, t.ErrExpired:
		return ErrAuthFailed(id, ts)
	case t.ErrPermissionDenied:
		return ErrPermissionDenied(id, ts)
	case t.ErrDuplicate:
		return ErrAlreadyExists(id, ts)
	case t.ErrUnsupported:
		return ErrOperationNotAllowed(id, ts)
	case t.ErrNotFound:
		return ErrNotFound(id, ts)
	default:
		return ErrUnknown(id, ts)
	}
}
