/******************************************************************************
 *
 *  Description :
 *
 *    Thread message lifecycle: post, edit with history capture, delete,
 *    pinning and listings. Fanout events are published only after the
 *    mutation durably commits.
 *
 *****************************************************************************/

package main

import (
	"github.com/sycs/chat/server/store"
	t "github.com/sycs/chat/server/store/types"
)

// Messages manages messages posted to group threads.
type Messages struct {
	store     store.MessagesPersistenceInterface
	threads   store.ThreadsPersistenceInterface
	publisher Publisher
}

// NewMessages creates the thread message component.
func NewMessages(persist store.MessagesPersistenceInterface,
	threads store.ThreadsPersistenceInterface, publisher Publisher) *Messages {
	return &Messages{store: persist, threads: threads, publisher: publisher}
}

// Post saves a new message to a thread and announces it to the thread room.
// The returned message carries the sender's profile snapshot.
func (c *Messages) Post(principal Principal, threadId t.Uid, content string,
	parentId t.Uid, attachment *t.Attachment) (*t.Message, error) {
	if !validContent(content) {
		return nil, t.ErrMalformed
	}

	thread, err := c.threads.Get(threadId)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, t.ErrNotFound
	}

	if attachment != nil && !canAttach(thread) {
		return nil, t.ErrPermissionDenied
	}

	// A reply pointer must name a message in the same thread. The link is
	// weak: it is checked at post time only and left dangling if the parent
	// is later deleted.
	if !parentId.IsZero() {
		parent, err := c.store.Get(parentId)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.ThreadId != threadId {
			return nil, t.ErrMalformed
		}
	}

	msg, err := c.store.Save(&t.Message{
		ThreadId:   threadId,
		SenderId:   principal.Uid,
		Content:    content,
		ParentId:   parentId,
		Attachment: attachment,
	})
	if err != nil {
		return nil, err
	}

	c.publisher.Publish(threadRoom(threadId), evtMessagePosted, msg)
	return msg, nil
}

// Get fetches a single message with the sender profile attached.
// Unauthenticated reads are permitted.
func (c *Messages) Get(id t.Uid) (*t.Message, error) {
	msg, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, t.ErrNotFound
	}
	return msg, nil
}

// List returns a thread's messages, pinned first, then by creation time
// ascending. Unauthenticated reads are permitted.
func (c *Messages) List(threadId t.Uid) ([]t.Message, error) {
	thread, err := c.threads.Get(threadId)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, t.ErrNotFound
	}
	return c.store.GetAll(threadId)
}

// Edit replaces a message's content. The previous content is captured into
// the edit history in the same transaction.
func (c *Messages) Edit(principal Principal, id t.Uid, content string) (*t.Message, error) {
	if !validContent(content) {
		return nil, t.ErrMalformed
	}

	msg, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, t.ErrNotFound
	}
	if !canEditMessage(principal.Uid, msg) {
		return nil, t.ErrPermissionDenied
	}

	if err = c.store.UpdateContent(id, content); err != nil {
		return nil, err
	}

	updated, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}

	c.publisher.Publish(threadRoom(msg.ThreadId), evtMessageEdited, updated)
	return updated, nil
}

// Delete removes a message. The author may delete their own message when the
// thread permits it; the thread creator may always delete. Replies pointing
// at the removed message are left dangling.
func (c *Messages) Delete(principal Principal, id t.Uid) error {
	msg, err := c.store.Get(id)
	if err != nil {
		return err
	}
	if msg == nil {
		return t.ErrNotFound
	}

	thread, err := c.threads.Get(msg.ThreadId)
	if err != nil {
		return err
	}
	if thread == nil {
		return t.ErrNotFound
	}
	if !canDeleteThreadMessage(principal.Uid, thread, msg) {
		return t.ErrPermissionDenied
	}

	if err = c.store.Delete(id); err != nil {
		return err
	}

	c.publisher.Publish(threadRoom(msg.ThreadId), evtMessageDeleted,
		map[string]interface{}{"id": id.String()})
	return nil
}

// Pin sets or clears the pinned flag. Thread creator only.
func (c *Messages) Pin(principal Principal, id t.Uid, pinned bool) error {
	msg, err := c.store.Get(id)
	if err != nil {
		return err
	}
	if msg == nil {
		return t.ErrNotFound
	}

	thread, err := c.threads.Get(msg.ThreadId)
	if err != nil {
		return err
	}
	if thread == nil {
		return t.ErrNotFound
	}
	if !canPinMessage(principal.Uid, thread) {
		return t.ErrPermissionDenied
	}

	if err = c.store.Pin(id, pinned); err != nil {
		return err
	}

	updated, err := c.store.Get(id)
	if err != nil {
		return err
	}
	c.publisher.Publish(threadRoom(msg.ThreadId), evtMessageEdited, updated)
	return nil
}

// EditHistory returns the pre-edit revisions, most recent first.
// Unauthenticated reads are permitted.
func (c *Messages) EditHistory(id t.Uid) ([]t.MessageEdit, error) {
	msg, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, t.ErrNotFound
	}
	return c.store.EditHistory(id)
}
