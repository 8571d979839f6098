/******************************************************************************
 *
 *  Description :
 *
 *    Direct message channels: canonical pair resolution, message lifecycle
 *    and channel listings. A channel exists at most once per unordered user
 *    pair and is created lazily on first contact.
 *
 *****************************************************************************/

package main

import (
	"github.com/sycs/chat/server/store"
	t "github.com/sycs/chat/server/store/types"
)

// DMs manages direct message channels and their messages.
type DMs struct {
	store     store.DMsPersistenceInterface
	social    store.SocialPersistenceInterface
	publisher Publisher
}

// NewDMs creates the DM component.
func NewDMs(persist store.DMsPersistenceInterface,
	social store.SocialPersistenceInterface, publisher Publisher) *DMs {
	return &DMs{store: persist, social: social, publisher: publisher}
}

// canOpen checks the relationship preconditions for opening a channel:
// an existing friendship and no block in either direction.
func (c *DMs) canOpen(a, b t.Uid) error {
	blocked, err := c.social.BlockExists(a, b)
	if err != nil {
		return err
	}
	if blocked {
		return t.ErrPermissionDenied
	}

	friendship, err := c.social.FriendshipGet(a, b)
	if err != nil {
		return err
	}
	if friendship == nil {
		return t.ErrPermissionDenied
	}
	return nil
}

// OpenChannel returns the channel between the principal and another user,
// creating it on first contact. Calling it repeatedly, or from either side,
// yields the same channel.
func (c *DMs) OpenChannel(principal Principal, other t.Uid) (*t.DMChannel, bool, error) {
	if other == principal.Uid || other.IsZero() {
		return nil, false, t.ErrMalformed
	}

	if err := c.canOpen(principal.Uid, other); err != nil {
		return nil, false, err
	}

	return c.store.ChannelGetOrCreate(principal.Uid, other)
}

// ListChannels returns the principal's channels with the counterparty
// profile and the latest message, most recently active first.
func (c *DMs) ListChannels(principal Principal) ([]t.DMChannelInfo, error) {
	return c.store.ChannelsForUser(principal.Uid)
}

// resolveParticipant verifies channel membership and returns the other side.
func (c *DMs) resolveParticipant(principal Principal, channelId t.Uid) (t.Uid, error) {
	participants, err := c.store.ParticipantsGet(channelId)
	if err != nil {
		return t.ZeroUid, err
	}
	if len(participants) == 0 {
		return t.ZeroUid, t.ErrNotFound
	}
	other := otherParticipant(principal.Uid, participants)
	if other.IsZero() {
		return t.ZeroUid, t.ErrPermissionDenied
	}
	return other, nil
}

// PostMessage saves a message to a channel the principal participates in and
// announces it to the channel room. A block in either direction between the
// participants makes the channel read-only.
func (c *DMs) PostMessage(principal Principal, channelId t.Uid, content string,
	parentId t.Uid) (*t.DMMessage, error) {
	if !validContent(content) {
		return nil, t.ErrMalformed
	}

	other, err := c.resolveParticipant(principal, channelId)
	if err != nil {
		return nil, err
	}

	blocked, err := c.social.BlockExists(principal.Uid, other)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, t.ErrPermissionDenied
	}

	if !parentId.IsZero() {
		parent, err := c.store.MessageGet(parentId)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.ChannelId != channelId {
			return nil, t.ErrMalformed
		}
	}

	msg, err := c.store.MessageSave(&t.DMMessage{
		ChannelId: channelId,
		SenderId:  principal.Uid,
		Content:   content,
		ParentId:  parentId,
	})
	if err != nil {
		return nil, err
	}

	c.publisher.Publish(dmRoom(channelId), evtDMMessagePosted, msg)
	return msg, nil
}

// ListMessages returns a channel's messages in creation order. Participants
// only.
func (c *DMs) ListMessages(principal Principal, channelId t.Uid) ([]t.DMMessage, error) {
	if _, err := c.resolveParticipant(principal, channelId); err != nil {
		return nil, err
	}
	return c.store.MessageGetAll(channelId)
}

// EditMessage replaces a DM message's content, capturing the previous
// content into the edit history. Author only. Edits are surfaced through
// reads rather than a fanout event.
func (c *DMs) EditMessage(principal Principal, id t.Uid, content string) (*t.DMMessage, error) {
	if !validContent(content) {
		return nil, t.ErrMalformed
	}

	msg, err := c.store.MessageGet(id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, t.ErrNotFound
	}
	if !canEditDMMessage(principal.Uid, msg) {
		return nil, t.ErrPermissionDenied
	}

	if err = c.store.MessageUpdateContent(id, content); err != nil {
		return nil, err
	}

	return c.store.MessageGet(id)
}

// DeleteMessage removes a DM message. Author only, with no owner override.
func (c *DMs) DeleteMessage(principal Principal, id t.Uid) error {
	msg, err := c.store.MessageGet(id)
	if err != nil {
		return err
	}
	if msg == nil {
		return t.ErrNotFound
	}
	if !canDeleteDMMessage(principal.Uid, msg) {
		return t.ErrPermissionDenied
	}

	if err = c.store.MessageDelete(id); err != nil {
		return err
	}

	c.publisher.Publish(dmRoom(msg.ChannelId), evtDMMessageDeleted,
		map[string]interface{}{"id": id.String()})
	return nil
}

// EditHistory returns a DM message's pre-edit revisions, most recent first.
// Participants only.
func (c *DMs) EditHistory(principal Principal, id t.Uid) ([]t.MessageEdit, error) {
	msg, err := c.store.MessageGet(id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, t.ErrNotFound
	}
	if _, err = c.resolveParticipant(principal, msg.ChannelId); err != nil {
		return nil, err
	}
	return c.store.MessageEditHistory(id)
}
