/******************************************************************************
 *
 *  Description :
 *
 *    Social graph: friend requests, friendships and blocks. The single
 *    source of truth for whether two users may interact.
 *
 *****************************************************************************/

package main

import (
	"github.com/sycs/chat/server/store"
	t "github.com/sycs/chat/server/store/types"
)

// Social maintains the relationship graph between users.
type Social struct {
	store store.SocialPersistenceInterface
	users store.UsersPersistenceInterface
}

// NewSocial creates the social graph component.
func NewSocial(persist store.SocialPersistenceInterface, users store.UsersPersistenceInterface) *Social {
	return &Social{store: persist, users: users}
}

// SendFriendRequest creates a pending request from the principal to the user
// resolved by handle or username.
func (c *Social) SendFriendRequest(principal Principal, targetLookup string) (*t.FriendRequest, error) {
	target, err := c.users.Find(targetLookup)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, t.ErrNotFound
	}
	if target.Uid() == principal.Uid {
		return nil, t.ErrMalformed
	}

	blocked, err := c.store.BlockExists(principal.Uid, target.Uid())
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, t.ErrPermissionDenied
	}

	friendship, err := c.store.FriendshipGet(principal.Uid, target.Uid())
	if err != nil {
		return nil, err
	}
	if friendship != nil {
		return nil, t.ErrDuplicate
	}

	pending, err := c.store.RequestGetPending(principal.Uid, target.Uid())
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, t.ErrDuplicate
	}

	return c.store.RequestCreate(&t.FriendRequest{
		SenderId:   principal.Uid,
		ReceiverId: target.Uid(),
	})
}

// ApproveFriendRequest converts a pending request addressed to the principal
// into a friendship. The request row is consumed in the same transaction.
func (c *Social) ApproveFriendRequest(principal Principal, requestId string) (*t.Friendship, error) {
	req, err := c.store.RequestGet(requestId)
	if err != nil {
		return nil, err
	}
	if req == nil || req.ReceiverId != principal.Uid {
		return nil, t.ErrNotFound
	}

	return c.store.RequestApprove(req)
}

// RejectFriendRequest removes a pending request. Permitted for the sender
// (cancellation) and the receiver (rejection).
func (c *Social) RejectFriendRequest(principal Principal, requestId string) error {
	req, err := c.store.RequestGet(requestId)
	if err != nil {
		return err
	}
	if req == nil {
		return t.ErrNotFound
	}
	if req.SenderId != principal.Uid && req.ReceiverId != principal.Uid {
		return t.ErrPermissionDenied
	}

	return c.store.RequestDelete(requestId)
}

// ListFriendRequests returns the principal's pending requests, incoming or
// outgoing.
func (c *Social) ListFriendRequests(principal Principal, incoming bool) ([]t.FriendRequest, error) {
	return c.store.RequestsForUser(principal.Uid, incoming)
}

// RemoveFriendship deletes the friendship between the principal and another
// user regardless of stored pair ordering.
func (c *Social) RemoveFriendship(principal Principal, other t.Uid) error {
	return c.store.FriendshipDelete(principal.Uid, other)
}

// ListFriends returns the principal's friends as profiles.
func (c *Social) ListFriends(principal Principal) ([]t.User, error) {
	return c.store.FriendsGetAll(principal.Uid)
}

// Block creates a directed block and atomically severs any friendship and
// any pending requests between the pair.
func (c *Social) Block(principal Principal, target t.Uid) (*t.Block, error) {
	if target == principal.Uid {
		return nil, t.ErrMalformed
	}

	user, err := c.users.Get(target)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, t.ErrNotFound
	}

	return c.store.BlockCreate(principal.Uid, target)
}

// Unblock removes the principal's block of another user. A previously
// severed friendship is not restored.
func (c *Social) Unblock(principal Principal, target t.Uid) error {
	return c.store.BlockDelete(principal.Uid, target)
}

// ListBlocks returns the users blocked by the principal.
func (c *Social) ListBlocks(principal Principal) ([]t.User, error) {
	return c.store.BlocksGetAll(principal.Uid)
}

// AreFriends reports whether an unsevered friendship exists between the two
// users.
func (c *Social) AreFriends(a, b t.Uid) (bool, error) {
	friendship, err := c.store.FriendshipGet(a, b)
	if err != nil {
		return false, err
	}
	return friendship != nil, nil
}

// IsBlocked reports whether a block exists between the two users in either
// direction.
func (c *Social) IsBlocked(a, b t.Uid) (bool, error) {
	return c.store.BlockExists(a, b)
}
