/******************************************************************************
 *
 *  Description :
 *
 *  Management of live websocket sessions.
 *
 *****************************************************************************/

package main

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sycs/chat/server/auth"
	"github.com/sycs/chat/server/logs"
	"github.com/sycs/chat/server/store"
)

// sessionDeps holds dependencies shared by all sessions.
type sessionDeps struct {
	// Fanout hub.
	hub *Hub
	// Session registry, for removal on disconnect.
	store *SessionStore
	// Authentication schemes by name.
	authHandlers map[string]auth.AuthHandler
	// DM channel persistence, used when authorizing DM room joins.
	dms store.DMsPersistenceInterface
}

// SessionStore holds live sessions indexed by session ID.
type SessionStore struct {
	lock sync.Mutex

	// All sessions indexed by session ID.
	sessCache map[string]*Session

	deps sessionDeps
}

// NewSession creates a new session and saves it to the session store.
func (ss *SessionStore) NewSession(conn interface{}, sid string) (*Session, int) {
	var s Session

	s.sid = sid

	switch c := conn.(type) {
	case *websocket.Conn:
		s.proto = WEBSOCK
		s.ws = c
	default:
		s.proto = NONE
	}

	if s.proto != NONE {
		s.subs = make(map[string]*Room)
		s.send = make(chan interface{}, 256)
		s.stop = make(chan interface{}, 1)
		s.deps = &ss.deps
	}

	s.lastAction = time.Now()
	if s.sid == "" {
		s.sid = store.GetUidString()
	}

	ss.lock.Lock()
	ss.sessCache[s.sid] = &s
	count := len(ss.sessCache)
	ss.lock.Unlock()

	statsSet("LiveSessions", int64(count))
	statsInc("TotalSessions", 1)

	return &s, count
}

// Get fetches a session from store by session ID.
func (ss *SessionStore) Get(sid string) *Session {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	return ss.sessCache[sid]
}

// Delete removes session from store.
func (ss *SessionStore) Delete(s *Session) int {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	delete(ss.sessCache, s.sid)
	count := len(ss.sessCache)
	statsSet("LiveSessions", int64(count))

	return count
}

// Shutdown terminates sessionStore. No need to clean up.
func (ss *SessionStore) Shutdown() {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	shutdown := NoErrShutdown(time.Now().UTC().Round(time.Millisecond))
	for _, s := range ss.sessCache {
		if s.stop != nil {
			s.stop <- s.serialize(shutdown)
		}
	}

	logs.Info.Printf("SessionStore shut down, sessions terminated: %d", len(ss.sessCache))
}

// NewSessionStore initializes a session store.
func NewSessionStore(hub *Hub, authHandlers map[string]auth.AuthHandler,
	dms store.DMsPersistenceInterface) *SessionStore {
	ss := &SessionStore{
		sessCache: make(map[string]*Session),
	}
	ss.deps = sessionDeps{
		hub:          hub,
		store:        ss,
		authHandlers: authHandlers,
		dms:          dms,
	}

	statsRegisterInt("LiveSessions")
	statsRegisterInt("TotalSessions")
	statsRegisterInt("IncomingMessagesWebsockTotal")
	statsRegisterInt("OutgoingMessagesWebsockTotal")

	return ss
}
