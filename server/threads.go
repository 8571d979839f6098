/******************************************************************************
 *
 *  Description :
 *
 *    Thread registry: group conversation records and their policy flags.
 *
 *****************************************************************************/

package main

import (
	"github.com/sycs/chat/server/store"
	t "github.com/sycs/chat/server/store/types"
)

// Threads manages group threads.
type Threads struct {
	store store.ThreadsPersistenceInterface
}

// NewThreads creates the thread registry component.
func NewThreads(persist store.ThreadsPersistenceInterface) *Threads {
	return &Threads{store: persist}
}

// Create registers a new thread owned by the principal.
func (c *Threads) Create(principal Principal, title string, visibility t.ThreadVisibility,
	flags t.ThreadFlags) (*t.Thread, error) {
	if !validTitle(title) {
		return nil, t.ErrMalformed
	}
	switch visibility {
	case t.VisibilityPublic, t.VisibilityPrivate, t.VisibilityInvite:
	case "":
		visibility = t.VisibilityPublic
	default:
		return nil, t.ErrMalformed
	}

	return c.store.Create(&t.Thread{
		Title:      title,
		CreatorId:  principal.Uid,
		Visibility: visibility,
		Flags:      flags,
	})
}

// Get fetches a thread. Unauthenticated reads are permitted.
func (c *Threads) Get(id t.Uid) (*t.Thread, error) {
	thread, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, t.ErrNotFound
	}
	return thread, nil
}

// List returns all threads. Unauthenticated reads are permitted.
func (c *Threads) List() ([]t.Thread, error) {
	return c.store.GetAll()
}

// Update changes a thread's title, visibility or policy flags. Creator only.
func (c *Threads) Update(principal Principal, id t.Uid, update map[string]interface{}) error {
	thread, err := c.Get(id)
	if err != nil {
		return err
	}
	if !canMutateThread(principal.Uid, thread) {
		return t.ErrPermissionDenied
	}

	allowed := map[string]bool{
		"title":            true,
		"visibility":       true,
		"spamcheck":        true,
		"modenabled":       true,
		"allowmsgdelete":   true,
		"allowattachments": true,
	}
	filtered := make(map[string]interface{})
	for k, v := range update {
		if !allowed[k] {
			return t.ErrMalformed
		}
		filtered[k] = v
	}
	if len(filtered) == 0 {
		return t.ErrMalformed
	}
	if title, ok := filtered["title"].(string); ok && !validTitle(title) {
		return t.ErrMalformed
	}
	if vis, ok := filtered["visibility"].(string); ok {
		switch t.ThreadVisibility(vis) {
		case t.VisibilityPublic, t.VisibilityPrivate, t.VisibilityInvite:
		default:
			return t.ErrMalformed
		}
	}

	return c.store.Update(id, filtered)
}

// Delete removes a thread together with all its messages and their edit
// history. Creator only.
func (c *Threads) Delete(principal Principal, id t.Uid) error {
	thread, err := c.Get(id)
	if err != nil {
		return err
	}
	if !canMutateThread(principal.Uid, thread) {
		return t.ErrPermissionDenied
	}

	return c.store.Delete(id)
}
