package main

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/sycs/chat/server/store/mock_store"
	"github.com/sycs/chat/server/store/types"
)

func TestCreateThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	c := NewThreads(threads)

	me := Principal{Uid: types.Uid(1)}

	threads.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(thread *types.Thread) (*types.Thread, error) {
			if thread.CreatorId != me.Uid {
				t.Errorf("Creator wrong: %v", thread.CreatorId)
			}
			if thread.Visibility != types.VisibilityPublic {
				t.Errorf("Blank visibility must default to public, got '%s'", thread.Visibility)
			}
			thread.SetUid(types.Uid(100))
			return thread, nil
		})

	thread, err := c.Create(me, "General", "", types.ThreadFlags{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if thread.Uid() != types.Uid(100) {
		t.Errorf("Expected thread id 100, got %v", thread.Uid())
	}
}

func TestCreateThreadInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	c := NewThreads(threads)
	me := Principal{Uid: types.Uid(1)}

	if _, err := c.Create(me, "   ", "", types.ThreadFlags{}); err != types.ErrMalformed {
		t.Errorf("Blank title: expected ErrMalformed, got %v", err)
	}
	if _, err := c.Create(me, "General", "secret", types.ThreadFlags{}); err != types.ErrMalformed {
		t.Errorf("Unknown visibility: expected ErrMalformed, got %v", err)
	}
}

func TestUpdateThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	c := NewThreads(threads)

	creator := Principal{Uid: types.Uid(1)}
	threadId := types.Uid(100)

	threads.EXPECT().Get(threadId).Return(testThread(threadId, creator.Uid, types.ThreadFlags{}), nil)
	threads.EXPECT().Update(threadId, gomock.Any()).DoAndReturn(
		func(id types.Uid, update map[string]interface{}) error {
			if update["title"] != "Renamed" {
				t.Errorf("Update must carry the new title, got %v", update)
			}
			return nil
		})

	if err := c.Update(creator, threadId, map[string]interface{}{"title": "Renamed"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestUpdateThreadNotCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	c := NewThreads(threads)

	threadId := types.Uid(100)
	threads.EXPECT().Get(threadId).Return(testThread(threadId, types.Uid(1), types.ThreadFlags{}), nil)

	err := c.Update(Principal{Uid: types.Uid(2)}, threadId, map[string]interface{}{"title": "Renamed"})
	if err != types.ErrPermissionDenied {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}

func TestUpdateThreadUnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	c := NewThreads(threads)

	creator := Principal{Uid: types.Uid(1)}
	threadId := types.Uid(100)
	threads.EXPECT().Get(threadId).Return(testThread(threadId, creator.Uid, types.ThreadFlags{}), nil)

	// The creator cannot be reassigned.
	err := c.Update(creator, threadId, map[string]interface{}{"creatorid": "someone"})
	if err != types.ErrMalformed {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestDeleteThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	threads := mock_store.NewMockThreadsPersistenceInterface(ctrl)
	c := NewThreads(threads)

	creator := Principal{Uid: types.Uid(1)}
	threadId := types.Uid(100)

	threads.EXPECT().Get(threadId).Return(testThread(threadId, creator.Uid, types.ThreadFlags{}), nil)
	threads.EXPECT().Delete(threadId).Return(nil)
	if err := c.Delete(creator, threadId); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	threads.EXPECT().Get(threadId).Return(testThread(threadId, creator.Uid, types.ThreadFlags{}), nil)
	if err := c.Delete(Principal{Uid: types.Uid(2)}, threadId); err != types.ErrPermissionDenied {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}
