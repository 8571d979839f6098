/******************************************************************************
 *
 *  Description :
 *
 *    Handler of websocket connections.
 *
 *****************************************************************************/

package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sycs/chat/server/logs"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = idleSessionTimeout

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Idle timeout on the websocket read side.
	idleSessionTimeout = 55 * time.Second

	// Maximum number of unsent messages queued per session before the
	// connection is considered stuck.
	sendQueueLimit = 128

	// Largest inbound websocket frame accepted.
	maxMessageSize = 1 << 19
)

func (sess *Session) closeWS() {
	if sess.proto == WEBSOCK {
		sess.ws.Close()
	}
}

func (sess *Session) readLoop() {
	defer func() {
		sess.closeWS()
		sess.cleanUp()
	}()

	sess.ws.SetReadLimit(maxMessageSize)
	sess.ws.SetReadDeadline(time.Now().Add(pongWait))
	sess.ws.SetPongHandler(func(string) error {
		sess.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Read a ClientComMessage.
		_, raw, err := sess.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				logs.Error.Println("ws: readLoop", sess.sid, err)
			}
			return
		}
		statsInc("IncomingMessagesWebsockTotal", 1)
		sess.dispatchRaw(raw)
	}
}

func (sess *Session) sendMessage(msg interface{}) bool {
	if len(sess.send) > sendQueueLimit {
		logs.Error.Println("ws: outbound queue limit exceeded", sess.sid)
		return false
	}

	statsInc("OutgoingMessagesWebsockTotal", 1)
	if err := wsWrite(sess.ws, websocket.TextMessage, msg); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
			websocket.CloseNormalClosure) {
			logs.Error.Println("ws: writeLoop", sess.sid, err)
		}
		return false
	}
	return true
}

func (sess *Session) writeLoop() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		// Break readLoop.
		sess.closeWS()
	}()

	for {
		select {
		case msg, ok := <-sess.send:
			if !ok {
				// Channel closed.
				return
			}
			if !sess.sendMessage(msg) {
				return
			}

		case msg := <-sess.stop:
			// Shutdown requested, don't care if the message is delivered.
			if msg != nil {
				wsWrite(sess.ws, websocket.TextMessage, msg)
			}
			return

		case <-ticker.C:
			if err := wsWrite(sess.ws, websocket.PingMessage, nil); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
					websocket.CloseNormalClosure) {
					logs.Error.Println("ws: writeLoop ping", sess.sid, err)
				}
				return
			}
		}
	}
}

// Writes a message with the given message type (mt) and payload.
func wsWrite(ws *websocket.Conn, mt int, msg interface{}) error {
	var bits []byte
	if msg != nil {
		bits = msg.([]byte)
	} else {
		bits = []byte{}
	}
	ws.SetWriteDeadline(time.Now().Add(writeWait))
	return ws.WriteMessage(mt, bits)
}

// Handles websocket requests from peers.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow connections from any Origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// serveWebSocket returns the handler upgrading connections and starting
// session loops.
func serveWebSocket(sessions *SessionStore) http.HandlerFunc {
	return func(wrt http.ResponseWriter, req *http.Request) {
		now := time.Now().UTC().Round(time.Millisecond)

		if req.Method != http.MethodGet {
			wrt.WriteHeader(http.StatusMethodNotAllowed)
			json.NewEncoder(wrt).Encode(ErrOperationNotAllowed("", now))
			logs.Error.Println("ws: invalid HTTP method", req.Method)
			return
		}

		ws, err := upgrader.Upgrade(wrt, req, nil)
		if _, ok := err.(websocket.HandshakeError); ok {
			logs.Error.Println("ws: not a websocket handshake")
			return
		} else if err != nil {
			logs.Error.Println("ws: failed to Upgrade ", err)
			return
		}

		sess, count := sessions.NewSession(ws, "")
		sess.remoteAddr = req.Header.Get("X-Forwarded-For")
		if sess.remoteAddr == "" {
			sess.remoteAddr = req.RemoteAddr
		}

		logs.Info.Println("ws: session started", sess.sid, sess.remoteAddr, count)

		// Do work in goroutines to return from serveWebSocket() to release
		// file pointers. Otherwise "too many open files" will happen.
		go sess.writeLoop()
		go sess.readLoop()
	}
}
