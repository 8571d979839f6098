/******************************************************************************
 *
 *  Description :
 *
 *    A room is a named fanout group. Sessions subscribe to a room to receive
 *    events published for it. Rooms are created on first join and torn down
 *    after a period with no subscribers.
 *
 *****************************************************************************/

package main

import (
	"time"

	"github.com/sycs/chat/server/logs"
)

// Kills a room after a period with no subscribed sessions.
const idleRoomTimeout = time.Second * 15

// Room holds subscribed sessions and serializes event delivery to them.
// Per-room ordering of events follows the order they were published.
type Room struct {
	// Routable name: "thread:<id>" or "dm:<channelId>".
	name string

	// Sessions attached to the room.
	sessions map[*Session]bool

	// Inbound events to fan out to sessions.
	broadcast chan *MsgServerEvent

	// Session joining the room.
	reg chan *sessionJoin

	// Session leaving the room.
	unreg chan *sessionLeave

	// Request to terminate, carries a channel to report completion.
	exit chan chan<- bool
}

func (r *Room) run(hub *Hub) {
	killTimer := time.NewTimer(time.Hour)
	killTimer.Stop()

	for {
		select {
		case join := <-r.reg:
			killTimer.Stop()
			r.sessions[join.sess] = true
			join.sess.addSub(r.name, r)
			join.sess.queueOut(NoErrParams(join.pkt.Join.Id,
				map[string]interface{}{"room": r.name}, join.pkt.timestamp))

		case leave := <-r.unreg:
			delete(r.sessions, leave.sess)
			leave.sess.delSub(r.name)
			if leave.pkt != nil {
				leave.sess.queueOut(NoErr(leave.pkt.Leave.Id, leave.pkt.timestamp))
			}
			if len(r.sessions) == 0 {
				killTimer.Reset(idleRoomTimeout)
			}

		case evt := <-r.broadcast:
			msg := &ServerComMessage{Event: evt}
			for sess := range r.sessions {
				if !sess.queueOut(msg) {
					// Events are fire-and-forget: a slow session misses
					// the event rather than stalling the room.
					logs.Warning.Println("room: dropped event for slow session", r.name, sess.sid)
				}
			}

		case <-killTimer.C:
			if len(r.sessions) == 0 {
				hub.unreg <- &roomUnreg{name: r.name}
				// Drain whatever was routed before the hub processed the
				// unregistration.
				r.drain()
				return
			}

		case done := <-r.exit:
			for sess := range r.sessions {
				sess.delSub(r.name)
			}
			r.sessions = nil
			done <- true
			return
		}
	}
}

// drain disposes of pending requests after the room decided to terminate.
// Late joiners are told to retry so the hub can create a fresh room.
func (r *Room) drain() {
	for {
		select {
		case join := <-r.reg:
			join.sess.queueOut(ErrUnknown(join.pkt.Join.Id, join.pkt.timestamp))
		case leave := <-r.unreg:
			leave.sess.delSub(r.name)
		case <-r.broadcast:
		default:
			return
		}
	}
}
