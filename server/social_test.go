package main

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/sycs/chat/server/store/mock_store"
	"github.com/sycs/chat/server/store/types"
)

func testUser(uid types.Uid, handle string) *types.User {
	user := &types.User{Handle: handle, Username: handle}
	user.SetUid(uid)
	return user
}

func TestSendFriendRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	me := Principal{Uid: types.Uid(1), Handle: "alice"}
	target := testUser(types.Uid(2), "bob")

	users.EXPECT().Find("bob").Return(target, nil)
	social.EXPECT().BlockExists(me.Uid, target.Uid()).Return(false, nil)
	social.EXPECT().FriendshipGet(me.Uid, target.Uid()).Return(nil, nil)
	social.EXPECT().RequestGetPending(me.Uid, target.Uid()).Return(nil, nil)
	social.EXPECT().RequestCreate(gomock.Any()).DoAndReturn(
		func(req *types.FriendRequest) (*types.FriendRequest, error) {
			if req.SenderId != me.Uid || req.ReceiverId != target.Uid() {
				t.Errorf("Request edge wrong: %v -> %v", req.SenderId, req.ReceiverId)
			}
			req.Id = "r1"
			return req, nil
		})

	req, err := c.SendFriendRequest(me, "bob")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if req.Id != "r1" {
		t.Errorf("Expected request id 'r1', got '%s'", req.Id)
	}
}

func TestSendFriendRequestTargetMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	users.EXPECT().Find("ghost").Return(nil, nil)

	if _, err := c.SendFriendRequest(Principal{Uid: types.Uid(1)}, "ghost"); err != types.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSendFriendRequestToSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	me := Principal{Uid: types.Uid(1), Handle: "alice"}
	users.EXPECT().Find("alice").Return(testUser(me.Uid, "alice"), nil)

	if _, err := c.SendFriendRequest(me, "alice"); err != types.ErrMalformed {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestSendFriendRequestBlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	me := Principal{Uid: types.Uid(1)}
	target := testUser(types.Uid(2), "bob")

	users.EXPECT().Find("bob").Return(target, nil)
	social.EXPECT().BlockExists(me.Uid, target.Uid()).Return(true, nil)

	if _, err := c.SendFriendRequest(me, "bob"); err != types.ErrPermissionDenied {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}

func TestSendFriendRequestAlreadyFriends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	me := Principal{Uid: types.Uid(1)}
	target := testUser(types.Uid(2), "bob")

	users.EXPECT().Find("bob").Return(target, nil)
	social.EXPECT().BlockExists(me.Uid, target.Uid()).Return(false, nil)
	social.EXPECT().FriendshipGet(me.Uid, target.Uid()).
		Return(&types.Friendship{UserLo: me.Uid, UserHi: target.Uid()}, nil)

	if _, err := c.SendFriendRequest(me, "bob"); err != types.ErrDuplicate {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
}

func TestSendFriendRequestReversePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	me := Principal{Uid: types.Uid(1)}
	target := testUser(types.Uid(2), "bob")

	users.EXPECT().Find("bob").Return(target, nil)
	social.EXPECT().BlockExists(me.Uid, target.Uid()).Return(false, nil)
	social.EXPECT().FriendshipGet(me.Uid, target.Uid()).Return(nil, nil)
	// The counterparty already sent a request the other way.
	social.EXPECT().RequestGetPending(me.Uid, target.Uid()).
		Return(&types.FriendRequest{Id: "r9", SenderId: target.Uid(), ReceiverId: me.Uid}, nil)

	if _, err := c.SendFriendRequest(me, "bob"); err != types.ErrDuplicate {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
}

func TestApproveFriendRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	me := Principal{Uid: types.Uid(2)}
	req := &types.FriendRequest{Id: "r1", SenderId: types.Uid(1), ReceiverId: me.Uid}

	social.EXPECT().RequestGet("r1").Return(req, nil)
	social.EXPECT().RequestApprove(req).
		Return(&types.Friendship{Id: "f1", UserLo: types.Uid(1), UserHi: me.Uid}, nil)

	friendship, err := c.ApproveFriendRequest(me, "r1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if friendship.UserLo != types.Uid(1) || friendship.UserHi != me.Uid {
		t.Errorf("Friendship pair wrong: %v, %v", friendship.UserLo, friendship.UserHi)
	}
}

func TestApproveFriendRequestNotReceiver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	// The sender cannot approve their own request.
	sender := Principal{Uid: types.Uid(1)}
	req := &types.FriendRequest{Id: "r1", SenderId: sender.Uid, ReceiverId: types.Uid(2)}
	social.EXPECT().RequestGet("r1").Return(req, nil)

	if _, err := c.ApproveFriendRequest(sender, "r1"); err != types.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRejectFriendRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	req := &types.FriendRequest{Id: "r1", SenderId: types.Uid(1), ReceiverId: types.Uid(2)}

	// The sender may cancel.
	social.EXPECT().RequestGet("r1").Return(req, nil)
	social.EXPECT().RequestDelete("r1").Return(nil)
	if err := c.RejectFriendRequest(Principal{Uid: types.Uid(1)}, "r1"); err != nil {
		t.Errorf("Sender cancel: expected no error, got %v", err)
	}

	// A third party may not.
	social.EXPECT().RequestGet("r1").Return(req, nil)
	if err := c.RejectFriendRequest(Principal{Uid: types.Uid(3)}, "r1"); err != types.ErrPermissionDenied {
		t.Errorf("Expected ErrPermissionDenied, got %v", err)
	}
}

func TestBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	me := Principal{Uid: types.Uid(1)}
	target := types.Uid(2)

	users.EXPECT().Get(target).Return(testUser(target, "bob"), nil)
	social.EXPECT().BlockCreate(me.Uid, target).
		Return(&types.Block{Id: "b1", BlockerId: me.Uid, BlockedId: target}, nil)

	block, err := c.Block(me, target)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if block.BlockerId != me.Uid || block.BlockedId != target {
		t.Errorf("Block edge wrong: %v -> %v", block.BlockerId, block.BlockedId)
	}
}

func TestBlockSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	me := Principal{Uid: types.Uid(1)}
	if _, err := c.Block(me, me.Uid); err != types.ErrMalformed {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestBlockTargetMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mock_store.NewMockSocialPersistenceInterface(ctrl)
	users := mock_store.NewMockUsersPersistenceInterface(ctrl)
	c := NewSocial(social, users)

	users.EXPECT().Get(types.Uid(99)).Return(nil, nil)

	if _, err := c.Block(Principal{Uid: types.Uid(1)}, types.Uid(99)); err != types.ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
