/******************************************************************************
 *
 *  Description :
 *
 *    Main hub for processing fanout: creating/tearing down rooms, routing
 *    events from components to room subscribers.
 *
 *****************************************************************************/

package main

import (
	"sync"
	"time"

	"github.com/sycs/chat/server/logs"
	t "github.com/sycs/chat/server/store/types"
)

// Publisher delivers a fanout event to a named room. Publishing never blocks
// and never fails: events for rooms with no subscribers are dropped.
type Publisher interface {
	Publish(room, what string, data interface{})
}

// Request to hub to subscribe session to a room.
type sessionJoin struct {
	// Message containing request details.
	pkt *ClientComMessage
	// Session to attach to the room.
	sess *Session
}

// Session wants to leave the room.
type sessionLeave struct {
	// Message containing request details. Could be nil when the session is
	// being torn down.
	pkt *ClientComMessage
	// Session which initiated the request.
	sess *Session
}

// Request to hub to remove a room which went idle.
type roomUnreg struct {
	// Routable name of the room to drop.
	name string
}

// Hub is the core structure which holds rooms.
type Hub struct {
	// Rooms indexed by name.
	rooms *sync.Map

	// Channel for routing events to rooms, buffered at 4096.
	route chan *MsgServerEvent

	// Subscribe session to room, possibly creating a new room, buffered at 256.
	join chan *sessionJoin

	// Remove a room from the hub, buffered at 256.
	unreg chan *roomUnreg

	// Request to shutdown, unbuffered.
	shutdown chan chan<- bool
}

func (h *Hub) roomGet(name string) *Room {
	if r, ok := h.rooms.Load(name); ok {
		return r.(*Room)
	}
	return nil
}

func (h *Hub) roomPut(name string, r *Room) {
	h.rooms.Store(name, r)
}

func (h *Hub) roomDel(name string) {
	h.rooms.Delete(name)
}

func newHub() *Hub {
	h := &Hub{
		rooms:    &sync.Map{},
		route:    make(chan *MsgServerEvent, 4096),
		join:     make(chan *sessionJoin, 256),
		unreg:    make(chan *roomUnreg, 256),
		shutdown: make(chan chan<- bool),
	}

	statsRegisterInt("LiveRooms")
	statsRegisterInt("TotalRooms")
	statsRegisterInt("EventsPublishedTotal")
	statsRegisterInt("EventsDroppedTotal")

	go h.run()

	return h
}

// Publish implements Publisher. Called by components after a successful
// durable commit. Delivery is best-effort.
func (h *Hub) Publish(room, what string, data interface{}) {
	evt := &MsgServerEvent{
		Room:      room,
		What:      what,
		Data:      data,
		Timestamp: t.TimeNow(),
	}
	select {
	case h.route <- evt:
		statsInc("EventsPublishedTotal", 1)
	default:
		statsInc("EventsDroppedTotal", 1)
		logs.Warning.Println("hub: route queue full, event dropped", room, what)
	}
}

func (h *Hub) run() {
	for {
		select {
		case join := <-h.join:
			// Is the room already present?
			r := h.roomGet(join.pkt.Join.Room)
			if r == nil {
				r = &Room{
					name:      join.pkt.Join.Room,
					sessions:  make(map[*Session]bool),
					broadcast: make(chan *MsgServerEvent, 256),
					reg:       make(chan *sessionJoin, 32),
					unreg:     make(chan *sessionLeave, 32),
					exit:      make(chan chan<- bool, 1),
				}
				// Save the room now to prevent a race with a second join.
				h.roomPut(r.name, r)
				statsInc("LiveRooms", 1)
				statsInc("TotalRooms", 1)
				go r.run(h)
			}
			select {
			case r.reg <- join:
			default:
				join.sess.queueOut(ErrUnknown(join.pkt.Join.Id, join.pkt.timestamp))
				logs.Warning.Println("hub: room's reg queue full", r.name, join.sess.sid)
			}

		case evt := <-h.route:
			// Events for rooms with no live subscribers are silently dropped.
			if dst := h.roomGet(evt.Room); dst != nil {
				select {
				case dst.broadcast <- evt:
				default:
					logs.Warning.Println("hub: room's broadcast queue full", dst.name)
				}
			}

		case unreg := <-h.unreg:
			h.roomDel(unreg.name)
			statsInc("LiveRooms", -1)

		case done := <-h.shutdown:
			h.rooms.Range(func(_, v interface{}) bool {
				r := v.(*Room)
				rdone := make(chan bool)
				r.exit <- rdone
				<-rdone
				return true
			})
			done <- true
			logs.Info.Println("hub: shutdown")
			return
		}
	}
}

// stopHub requests hub shutdown and waits for it to complete or time out.
func stopHub(h *Hub, wait time.Duration) {
	done := make(chan bool)
	h.shutdown <- done
	select {
	case <-done:
	case <-time.After(wait):
		logs.Error.Println("hub: shutdown timed out")
	}
}
