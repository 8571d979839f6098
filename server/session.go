/******************************************************************************
 *
 *  Description :
 *
 *  Handling of client connections. One user may have multiple sessions.
 *  Each session may subscribe to multiple rooms.
 *
 *****************************************************************************/

package main

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sycs/chat/server/logs"
	t "github.com/sycs/chat/server/store/types"
)

// Wire transport.
const (
	NONE = iota
	WEBSOCK
)

// Session represents a single websocket connection. A user may have multiple
// sessions.
type Session struct {
	// protocol - NONE (unset) or WEBSOCK.
	proto int

	// Websocket connection.
	ws *websocket.Conn

	// IP address of the client.
	remoteAddr string

	// ID of the current user or 0 before a successful {login}.
	uid t.Uid

	// Time when the session received any packet from client.
	lastAction time.Time

	// Outbound messages, buffered. The content is already serialized.
	send chan interface{}

	// Channel for shutting down the session, buffer 1.
	// Content in the same format as for 'send'.
	stop chan interface{}

	// Map of room subscriptions, indexed by room name.
	// Don't access directly. Use getters/setters.
	subs map[string]*Room
	// Mutex for subs access: both room go routines and network go routines
	// access subs concurrently.
	subsLock sync.RWMutex

	// Session ID.
	sid string

	// Dependencies shared by all sessions, owned by the session store.
	deps *sessionDeps
}

func (s *Session) addSub(room string, r *Room) {
	s.subsLock.Lock()
	defer s.subsLock.Unlock()

	s.subs[room] = r
}

func (s *Session) getSub(room string) *Room {
	s.subsLock.RLock()
	defer s.subsLock.RUnlock()

	return s.subs[room]
}

func (s *Session) delSub(room string) {
	s.subsLock.Lock()
	defer s.subsLock.Unlock()

	delete(s.subs, room)
}

func (s *Session) unsubAll() {
	s.subsLock.RLock()
	defer s.subsLock.RUnlock()

	for _, r := range s.subs {
		r.unreg <- &sessionLeave{sess: s}
	}
}

// queueOut attempts to send a ServerComMessage to the session; if the send
// buffer is full, timeout is 50 usec.
func (s *Session) queueOut(msg *ServerComMessage) bool {
	if s == nil {
		return true
	}

	select {
	case s.send <- s.serialize(msg):
	case <-time.After(time.Microsecond * 50):
		logs.Warning.Println("s.queueOut: timeout", s.sid)
		return false
	}
	return true
}

func (s *Session) cleanUp() {
	s.deps.store.Delete(s)
	s.unsubAll()
}

// Message received, convert bytes to ClientComMessage and dispatch.
func (s *Session) dispatchRaw(raw []byte) {
	var msg ClientComMessage

	toLog := raw
	truncated := ""
	if len(raw) > 512 {
		toLog = raw[:512]
		truncated = "<...>"
	}
	logs.Info.Printf("in: '%s%s' ip='%s' sid='%s' uid='%s'", toLog, truncated, s.remoteAddr, s.sid, s.uid)

	if err := json.Unmarshal(raw, &msg); err != nil {
		logs.Warning.Println("s.dispatch", err, s.sid)
		s.queueOut(ErrMalformed("", t.TimeNow()))
		return
	}

	s.dispatch(&msg)
}

func (s *Session) dispatch(msg *ClientComMessage) {
	s.lastAction = t.TimeNow()
	msg.timestamp = s.lastAction

	switch {
	case msg.Login != nil:
		s.login(msg)

	case msg.Join != nil:
		s.join(msg)

	case msg.Leave != nil:
		s.leave(msg)

	default:
		// Unknown message.
		s.queueOut(ErrMalformed("", msg.timestamp))
		logs.Warning.Println("s.dispatch: unknown message", s.sid)
	}
}

// Authenticate the session with one of the configured schemes.
func (s *Session) login(msg *ClientComMessage) {
	if !s.uid.IsZero() {
		s.queueOut(ErrAlreadyExists(msg.Login.Id, msg.timestamp))
		logs.Warning.Println("s.login: already authenticated", s.sid)
		return
	}

	handler := s.deps.authHandlers[msg.Login.Scheme]
	if handler == nil {
		s.queueOut(ErrMalformed(msg.Login.Id, msg.timestamp))
		logs.Warning.Println("s.login: unknown auth scheme", msg.Login.Scheme, s.sid)
		return
	}

	rec, err := handler.Authenticate([]byte(msg.Login.Secret))
	if err != nil {
		s.queueOut(decodeStoreError(err, msg.Login.Id, msg.timestamp))
		logs.Warning.Println("s.login: failed", err, s.sid)
		return
	}

	s.uid = rec.Uid

	// Issue a token so the client can authenticate the REST surface too.
	params := map[string]interface{}{"user": s.uid.String()}
	if tokenHdl := s.deps.authHandlers["token"]; tokenHdl != nil {
		if token, expires, err := tokenHdl.GenSecret(rec); err == nil {
			params["token"] = string(token)
			params["expires"] = expires
		}
	}

	s.queueOut(NoErrParams(msg.Login.Id, params, msg.timestamp))
}

// Request to subscribe to a room.
func (s *Session) join(msg *ClientComMessage) {
	kind, id := parseRoom(msg.Join.Room)
	if kind == "" {
		s.queueOut(ErrMalformed(msg.Join.Id, msg.timestamp))
		return
	}

	if s.getSub(msg.Join.Room) != nil {
		s.queueOut(ErrAlreadyExists(msg.Join.Id, msg.timestamp))
		return
	}

	// Thread rooms are open to any connection, authenticated or not.
	// DM rooms are restricted to authenticated channel participants.
	if kind == roomDMPrefix {
		if s.uid.IsZero() {
			s.queueOut(ErrAuthRequired(msg.Join.Id, msg.timestamp))
			return
		}
		participants, err := s.deps.dms.ParticipantsGet(id)
		if err != nil {
			s.queueOut(decodeStoreError(err, msg.Join.Id, msg.timestamp))
			return
		}
		if !isParticipant(s.uid, participants) {
			s.queueOut(ErrPermissionDenied(msg.Join.Id, msg.timestamp))
			return
		}
	}

	s.deps.hub.join <- &sessionJoin{pkt: msg, sess: s}
	// The room will respond.
}

// Request to leave a room.
func (s *Session) leave(msg *ClientComMessage) {
	r := s.getSub(msg.Leave.Room)
	if r == nil {
		s.queueOut(ErrNotFound(msg.Leave.Id, msg.timestamp))
		return
	}

	r.unreg <- &sessionLeave{pkt: msg, sess: s}
}

func (s *Session) serialize(msg *ServerComMessage) interface{} {
	out, _ := json.Marshal(msg)
	return out
}
