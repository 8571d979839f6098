package main

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/sycs/chat/server/store/mock_store"
	"github.com/sycs/chat/server/store/types"
)

// testPublisher records published events instead of routing them.
type testPublisher struct {
	events []*MsgServerEvent
}

func (p *testPublisher) Publish(room, what string, data interface{}) {
	p.events = append(p.events, &MsgServerEvent{Room: room, What: what, Data: data})
}

func (p *testPublisher) verify(t *testing.T, room, what string) *MsgServerEvent {
	t.Helper()
	if len(p.events) != 1 {
		t.Fatalf("Expected 1 published event, got %d", len(p.events))
	}
	evt := p.events[0]
	if evt.Room != room {
		t.Errorf("Event room: expected '%s', got '%s'", room, evt.Room)
	}
	if evt.What != what {
		t.Errorf("Event name: expected '%s', got '%s'", what, evt.What)
	}
	return evt
}

func testThread(id, creator types.Uid, flags types.ThreadFlags) *types.Thread {
	thread := &types.Thread{Title: "test", CreatorId: creator, Visibility: types.VisibilityPublic, Flags: flags}
	thread.SetUid(id)
	return thread
}

func testMessage(id, threadId, sender types.Uid, content string) *types.Message {
	msg := &types.Message{ThreadId: threadId, SenderId: sender, Content: content}
	msg.SetUid(id)
	return msg
}

func TestPostMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	me := Principal{Uid: types.Uid(5)}
	threadId := types.Uid(100)

	threads.EXPECT().Get(threadId).Return(testThread(threadId, types.Uid(1), types.ThreadFlags{}), nil)
	msgs.EXPECT().Save(gomock.Any()).DoAndReturn(
		func(msg *types.Message) (*types.Message, error) {
			if msg.ThreadId != threadId || msg.SenderId != me.Uid {
				t.Errorf("Message addressing wrong: thread %v, sender %v", msg.ThreadId, msg.SenderId)
			}
			msg.SetUid(types.Uid(777))
			return msg, nil
		})

	msg, err := c.Post(me, threadId, "hello", types.ZeroUid, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The event is published after the commit and carries the saved message.
	evt := pub.verify(t, threadRoom(threadId), evtMessagePosted)
	if evt.Data.(*types.Message) != msg {
		t.Error("Published event must carry the saved message")
	}
}

func TestPostMessageThreadMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	threads.EXPECT().Get(types.Uid(100)).Return(nil, nil)

	_, err := c.Post(Principal{Uid: types.Uid(5)}, types.Uid(100), "hello", types.ZeroUid, nil)
	if err != types.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Error("Nothing must be published on failure")
	}
}

func TestPostMessageAttachmentPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	me := Principal{Uid: types.Uid(5)}
	threadId := types.Uid(100)
	attachment := &types.Attachment{Url: "https://files.example.com/a.png", Name: "a.png"}

	// Attachments disabled: rejected.
	threads.EXPECT().Get(threadId).Return(testThread(threadId, types.Uid(1), types.ThreadFlags{}), nil)
	if _, err := c.Post(me, threadId, "pic", types.ZeroUid, attachment); err != types.ErrPermissionDenied {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}

	// Attachments enabled: accepted.
	threads.EXPECT().Get(threadId).
		Return(testThread(threadId, types.Uid(1), types.ThreadFlags{AllowAttachments: true}), nil)
	msgs.EXPECT().Save(gomock.Any()).DoAndReturn(
		func(msg *types.Message) (*types.Message, error) {
			if diff := cmp.Diff(attachment, msg.Attachment); diff != "" {
				t.Errorf("Attachment mismatch (-want +got):\n%s", diff)
			}
			msg.SetUid(types.Uid(777))
			return msg, nil
		})
	if _, err := c.Post(me, threadId, "pic", types.ZeroUid, attachment); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestPostMessageParentValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	me := Principal{Uid: types.Uid(5)}
	threadId := types.Uid(100)
	parentId := types.Uid(700)

	// Parent belongs to a different thread: rejected.
	threads.EXPECT().Get(threadId).Return(testThread(threadId, types.Uid(1), types.ThreadFlags{}), nil)
	msgs.EXPECT().Get(parentId).Return(testMessage(parentId, types.Uid(999), types.Uid(1), "other"), nil)
	if _, err := c.Post(me, threadId, "reply", parentId, nil); err != types.ErrMalformed {
		t.Errorf("Cross-thread parent: expected ErrMalformed, got %v", err)
	}

	// Parent missing: rejected.
	threads.EXPECT().Get(threadId).Return(testThread(threadId, types.Uid(1), types.ThreadFlags{}), nil)
	msgs.EXPECT().Get(parentId).Return(nil, nil)
	if _, err := c.Post(me, threadId, "reply", parentId, nil); err != types.ErrMalformed {
		t.Errorf("Missing parent: expected ErrMalformed, got %v", err)
	}

	// Parent in the same thread: accepted.
	threads.EXPECT().Get(threadId).Return(testThread(threadId, types.Uid(1), types.ThreadFlags{}), nil)
	msgs.EXPECT().Get(parentId).Return(testMessage(parentId, threadId, types.Uid(1), "parent"), nil)
	msgs.EXPECT().Save(gomock.Any()).DoAndReturn(
		func(msg *types.Message) (*types.Message, error) {
			msg.SetUid(types.Uid(777))
			return msg, nil
		})
	if _, err := c.Post(me, threadId, "reply", parentId, nil); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestEditMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	me := Principal{Uid: types.Uid(5)}
	threadId := types.Uid(100)
	msgId := types.Uid(777)

	original := testMessage(msgId, threadId, me.Uid, "first")
	updated := testMessage(msgId, threadId, me.Uid, "second")

	msgs.EXPECT().Get(msgId).Return(original, nil)
	msgs.EXPECT().UpdateContent(msgId, "second").Return(nil)
	msgs.EXPECT().Get(msgId).Return(updated, nil)

	got, err := c.Edit(me, msgId, "second")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Content != "second" {
		t.Errorf("Expected updated content, got '%s'", got.Content)
	}
	pub.verify(t, threadRoom(threadId), evtMessageEdited)
}

func TestEditMessageNotAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	msgId := types.Uid(777)
	msgs.EXPECT().Get(msgId).Return(testMessage(msgId, types.Uid(100), types.Uid(1), "text"), nil)

	if _, err := c.Edit(Principal{Uid: types.Uid(5)}, msgId, "changed"); err != types.ErrPermissionDenied {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Error("Nothing must be published on failure")
	}
}

func TestDeleteMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	creator := Principal{Uid: types.Uid(1)}
	threadId := types.Uid(100)
	msgId := types.Uid(777)

	msgs.EXPECT().Get(msgId).Return(testMessage(msgId, threadId, types.Uid(5), "text"), nil)
	threads.EXPECT().Get(threadId).Return(testThread(threadId, creator.Uid, types.ThreadFlags{}), nil)
	msgs.EXPECT().Delete(msgId).Return(nil)

	if err := c.Delete(creator, msgId); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	evt := pub.verify(t, threadRoom(threadId), evtMessageDeleted)
	data := evt.Data.(map[string]interface{})
	if data["id"] != msgId.String() {
		t.Errorf("Deletion event must carry the message id, got %v", data["id"])
	}
}

func TestDeleteMessageDeniedByPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	author := Principal{Uid: types.Uid(5)}
	threadId := types.Uid(100)
	msgId := types.Uid(777)

	// Author's own message, but the thread does not permit member deletions.
	msgs.EXPECT().Get(msgId).Return(testMessage(msgId, threadId, author.Uid, "text"), nil)
	threads.EXPECT().Get(threadId).Return(testThread(threadId, types.Uid(1), types.ThreadFlags{}), nil)

	if err := c.Delete(author, msgId); err != types.ErrPermissionDenied {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}

func TestPinMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	creator := Principal{Uid: types.Uid(1)}
	threadId := types.Uid(100)
	msgId := types.Uid(777)

	msgs.EXPECT().Get(msgId).Return(testMessage(msgId, threadId, types.Uid(5), "text"), nil)
	threads.EXPECT().Get(threadId).Return(testThread(threadId, creator.Uid, types.ThreadFlags{}), nil)
	msgs.EXPECT().Pin(msgId, true).Return(nil)
	pinned := testMessage(msgId, threadId, types.Uid(5), "text")
	pinned.Pinned = true
	msgs.EXPECT().Get(msgId).Return(pinned, nil)

	if err := c.Pin(creator, msgId, true); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	evt := pub.verify(t, threadRoom(threadId), evtMessageEdited)
	if !evt.Data.(*types.Message).Pinned {
		t.Error("Published message must carry the pinned flag")
	}
}

func TestPinMessageNotCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	author := Principal{Uid: types.Uid(5)}
	threadId := types.Uid(100)
	msgId := types.Uid(777)

	// Even the author cannot pin, only the thread creator.
	msgs.EXPECT().Get(msgId).Return(testMessage(msgId, threadId, author.Uid, "text"), nil)
	threads.EXPECT().Get(threadId).Return(testThread(threadId, types.Uid(1), types.ThreadFlags{}), nil)

	if err := c.Pin(author, msgId, true); err != types.ErrPermissionDenied {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}

func TestEditHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgs := mock_store.NewMockMessagesPersistenceInterface(ctrl)
	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	pub := &testPublisher{}
	c := NewMessages(msgs, threads, pub)

	msgId := types.Uid(777)
	now := time.Now().UTC().Round(time.Millisecond)
	history := []types.MessageEdit{
		{Id: "e2", MessageId: msgId, Content: "second", CreatedAt: now},
		{Id: "e1", MessageId: msgId, Content: "first", CreatedAt: now.Add(-time.Minute)},
	}

	msgs.EXPECT().Get(msgId).Return(testMessage(msgId, types.Uid(100), types.Uid(5), "third"), nil)
	msgs.EXPECT().EditHistory(msgId).Return(history, nil)

	got, err := c.EditHistory(msgId)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if diff := cmp.Diff(history, got); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
}
