package main

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/sycs/chat/server/auth"
	"github.com/sycs/chat/server/auth/mock_auth"
	"github.com/sycs/chat/server/logs"
	"github.com/sycs/chat/server/store/mock_store"
	"github.com/sycs/chat/server/store/types"
)

func TestMain(m *testing.M) {
	logs.Init()
	os.Exit(m.Run())
}

type Responses struct {
	messages []interface{}
}

func (s *Session) testWriteLoop(results *Responses, wg *sync.WaitGroup) {
	for msg := range s.send {
		results.messages = append(results.messages, msg)
	}
	wg.Done()
}

// Session output is serialized before queueing; decode it back for checks.
func decodeResponse(t *testing.T, raw interface{}) *ServerComMessage {
	t.Helper()
	data, ok := raw.([]byte)
	if !ok {
		t.Fatalf("Response must be serialized bytes, got %T", raw)
	}
	var msg ServerComMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return &msg
}

func verifyResponseCodes(r *Responses, codes []int, t *testing.T) {
	t.Helper()
	if len(r.messages) != len(codes) {
		t.Fatalf("responses: expected %d, received %d.", len(codes), len(r.messages))
	}
	for i := 0; i < len(codes); i++ {
		resp := decodeResponse(t, r.messages[i])
		if resp.Ctrl == nil {
			t.Fatalf("Response %d must contain a ctrl message.", i)
		}
		if resp.Ctrl.Code != codes[i] {
			t.Errorf("Response code: expected %d, got %d", codes[i], resp.Ctrl.Code)
		}
	}
}

func newTestSession(deps *sessionDeps) *Session {
	return &Session{
		send: make(chan interface{}, 10),
		stop: make(chan interface{}, 1),
		subs: make(map[string]*Room),
		sid:  "test-sid",
		deps: deps,
	}
}

func TestDispatchLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uid := types.Uid(1)
	secret := "alice:correct-password"

	basic := mock_auth.NewMockAuthHandler(ctrl)
	basic.EXPECT().Authenticate([]byte(secret)).Return(&auth.Rec{Uid: uid}, nil)

	s := newTestSession(&sessionDeps{
		authHandlers: map[string]auth.AuthHandler{"basic": basic},
	})
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatch(&ClientComMessage{
		Login: &MsgClientLogin{Id: "123", Scheme: "basic", Secret: secret},
	})
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusOK}, t)
	if s.uid != uid {
		t.Errorf("Session uid: expected %v, got %v", uid, s.uid)
	}
	resp := decodeResponse(t, r.messages[0])
	params, _ := resp.Ctrl.Params.(map[string]interface{})
	if params["user"] != uid.String() {
		t.Errorf("Login params must carry the user id, got %v", params)
	}
}

func TestDispatchLoginFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	basic := mock_auth.NewMockAuthHandler(ctrl)
	basic.EXPECT().Authenticate(gomock.Any()).Return(nil, types.ErrFailed)

	s := newTestSession(&sessionDeps{
		authHandlers: map[string]auth.AuthHandler{"basic": basic},
	})
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatch(&ClientComMessage{
		Login: &MsgClientLogin{Id: "123", Scheme: "basic", Secret: "alice:wrong"},
	})
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusUnauthorized}, t)
	if !s.uid.IsZero() {
		t.Error("Failed login must leave the session unauthenticated")
	}
}

func TestDispatchLoginUnknownScheme(t *testing.T) {
	s := newTestSession(&sessionDeps{authHandlers: map[string]auth.AuthHandler{}})
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatch(&ClientComMessage{
		Login: &MsgClientLogin{Id: "123", Scheme: "carrier-pigeon", Secret: "x"},
	})
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusBadRequest}, t)
}

func TestDispatchLoginTwice(t *testing.T) {
	s := newTestSession(&sessionDeps{authHandlers: map[string]auth.AuthHandler{}})
	s.uid = types.Uid(1)
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatch(&ClientComMessage{
		Login: &MsgClientLogin{Id: "123", Scheme: "basic", Secret: "again"},
	})
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusConflict}, t)
}

func TestDispatchUnknownMessage(t *testing.T) {
	s := newTestSession(&sessionDeps{})
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatch(&ClientComMessage{})
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusBadRequest}, t)
}

func TestDispatchRawMalformed(t *testing.T) {
	s := newTestSession(&sessionDeps{})
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatchRaw([]byte("this is not json"))
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusBadRequest}, t)
}

func TestDispatchJoinThreadRoom(t *testing.T) {
	h := &Hub{join: make(chan *sessionJoin, 1)}
	s := newTestSession(&sessionDeps{hub: h})
	room := threadRoom(types.Uid(100))

	// Unauthenticated sessions may watch thread rooms.
	s.dispatch(&ClientComMessage{Join: &MsgClientJoin{Id: "1", Room: room}})

	select {
	case join := <-h.join:
		if join.pkt.Join.Room != room {
			t.Errorf("Join room: expected '%s', got '%s'", room, join.pkt.Join.Room)
		}
		if join.sess != s {
			t.Error("Join must reference the requesting session")
		}
	default:
		t.Fatal("Join request must be forwarded to the hub")
	}
}

func TestDispatchJoinInvalidRoom(t *testing.T) {
	s := newTestSession(&sessionDeps{})
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatch(&ClientComMessage{Join: &MsgClientJoin{Id: "1", Room: "not-a-room"}})
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusBadRequest}, t)
}

func TestDispatchJoinDMRoomUnauthenticated(t *testing.T) {
	s := newTestSession(&sessionDeps{})
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatch(&ClientComMessage{Join: &MsgClientJoin{Id: "1", Room: dmRoom(types.Uid(50))}})
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusUnauthorized}, t)
}

func TestDispatchJoinDMRoomNotParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channelId := types.Uid(50)
	dms := mock_store.NewMockDMsPersistenceInterface(ctrl)
	dms.EXPECT().ParticipantsGet(channelId).
		Return([]types.DMParticipant{
			{ChannelId: channelId, UserId: types.Uid(1)},
			{ChannelId: channelId, UserId: types.Uid(2)},
		}, nil)

	s := newTestSession(&sessionDeps{dms: dms})
	s.uid = types.Uid(9)
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatch(&ClientComMessage{Join: &MsgClientJoin{Id: "1", Room: dmRoom(channelId)}})
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusForbidden}, t)
}

func TestDispatchJoinDMRoomParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channelId := types.Uid(50)
	dms := mock_store.NewMockDMsPersistenceInterface(ctrl)
	dms.EXPECT().ParticipantsGet(channelId).
		Return([]types.DMParticipant{
			{ChannelId: channelId, UserId: types.Uid(1)},
			{ChannelId: channelId, UserId: types.Uid(2)},
		}, nil)

	h := &Hub{join: make(chan *sessionJoin, 1)}
	s := newTestSession(&sessionDeps{hub: h, dms: dms})
	s.uid = types.Uid(1)

	s.dispatch(&ClientComMessage{Join: &MsgClientJoin{Id: "1", Room: dmRoom(channelId)}})

	select {
	case <-h.join:
	default:
		t.Fatal("Participant join must be forwarded to the hub")
	}
}

func TestDispatchLeaveNotJoined(t *testing.T) {
	s := newTestSession(&sessionDeps{})
	wg := sync.WaitGroup{}
	r := Responses{}
	wg.Add(1)
	go s.testWriteLoop(&r, &wg)

	s.dispatch(&ClientComMessage{Leave: &MsgClientLeave{Id: "1", Room: threadRoom(types.Uid(100))}})
	close(s.send)
	wg.Wait()

	verifyResponseCodes(&r, []int{http.StatusNotFound}, t)
}

func TestDispatchLeave(t *testing.T) {
	room := threadRoom(types.Uid(100))
	r := &Room{name: room, unreg: make(chan *sessionLeave, 1)}
	s := newTestSession(&sessionDeps{})
	s.addSub(room, r)

	s.dispatch(&ClientComMessage{Leave: &MsgClientLeave{Id: "1", Room: room}})

	select {
	case leave := <-r.unreg:
		if leave.sess != s || leave.pkt == nil {
			t.Error("Leave must carry the session and the originating packet")
		}
	case <-time.After(time.Second):
		t.Fatal("Leave request must be forwarded to the room")
	}
}
