// Package adapter contains the interfaces to be implemented by the database adapter.
package adapter

import (
	"encoding/json"
	"time"

	t "github.com/sycs/chat/server/store/types"
)

// Adapter is the interface implemented by the concrete database adapters.
type Adapter interface {
	// General

	// Open and configure the database.
	Open(config json.RawMessage) error
	// Close the database connection.
	Close() error
	// IsOpen checks if the database is ready for use.
	IsOpen() bool
	// GetDbVersion returns the current database schema version.
	GetDbVersion() (int, error)
	// CheckDbVersion checks if the actual database version matches
	// the adapter's expected version.
	CheckDbVersion() error
	// GetName returns the adapter's name.
	GetName() string
	// SetMaxResults configures the maximum number of records to return in a single query.
	SetMaxResults(val int) error
	// CreateDb creates the database optionally dropping an existing database first.
	// Seeds the system account and the default hub thread.
	CreateDb(reset bool) error
	// UpgradeDb upgrades the database to the current adapter version.
	UpgradeDb() error
	// Version returns the adapter's schema version.
	Version() int
	// Stats returns the DB connection stats object.
	Stats() interface{}

	// Users

	// UserCreate creates a user record.
	UserCreate(user *t.User) error
	// UserGet fetches a single user by id.
	UserGet(uid t.Uid) (*t.User, error)
	// UserGetAll fetches multiple users by ids.
	UserGetAll(ids ...t.Uid) ([]t.User, error)
	// UserFind resolves a user by public handle or username.
	UserFind(handleOrUsername string) (*t.User, error)
	// UserUpdate updates user's profile record.
	UserUpdate(uid t.Uid, update map[string]interface{}) error

	// Authentication records

	// AuthAddRecord creates a new authentication record for the given user.
	AuthAddRecord(user t.Uid, scheme, unique string, secret []byte, expires time.Time) error
	// AuthGetRecord fetches an authentication record by scheme and unique value.
	AuthGetRecord(scheme, unique string) (t.Uid, []byte, time.Time, error)
	// AuthUpdRecord replaces the secret of an existing authentication record.
	AuthUpdRecord(user t.Uid, scheme, unique string, secret []byte, expires time.Time) error

	// Threads

	// ThreadCreate creates a group thread record.
	ThreadCreate(thread *t.Thread) error
	// ThreadGet fetches a single thread by id.
	ThreadGet(id t.Uid) (*t.Thread, error)
	// ThreadGetAll returns all threads, newest first.
	ThreadGetAll() ([]t.Thread, error)
	// ThreadUpdate updates thread's title, visibility or policy flags.
	ThreadUpdate(id t.Uid, update map[string]interface{}) error
	// ThreadDelete removes the thread and all its messages in one transaction.
	ThreadDelete(id t.Uid) error

	// Thread messages

	// MessageSave saves a new thread message.
	MessageSave(msg *t.Message) error
	// MessageGet fetches a single message with the sender's profile attached.
	MessageGet(id t.Uid) (*t.Message, error)
	// MessageGetAll returns the thread's messages, pinned first then by
	// creation time ascending, with sender profiles attached.
	MessageGetAll(threadId t.Uid) ([]t.Message, error)
	// MessageUpdateContent appends the current content to the edit history
	// and overwrites it with the new content in one transaction.
	MessageUpdateContent(id t.Uid, content string) error
	// MessagePin sets or clears the pinned flag.
	MessagePin(id t.Uid, pinned bool) error
	// MessageDelete removes a message. Edit history cascades away, reply
	// pointers of other messages are left as they are.
	MessageDelete(id t.Uid) error
	// MessageEditHistory returns the message's edit records, most recent first.
	MessageEditHistory(id t.Uid) ([]t.MessageEdit, error)

	// Social graph

	// FriendRequestCreate inserts a pending friend request.
	FriendRequestCreate(req *t.FriendRequest) error
	// FriendRequestGet fetches a single pending request by id.
	FriendRequestGet(id string) (*t.FriendRequest, error)
	// FriendRequestGetPending fetches a pending request between two users in either direction.
	FriendRequestGetPending(u1, u2 t.Uid) (*t.FriendRequest, error)
	// FriendRequestsForUser lists pending requests where the user is the
	// receiver (incoming) or the sender (outgoing), counterparty profiles attached.
	FriendRequestsForUser(uid t.Uid, incoming bool) ([]t.FriendRequest, error)
	// FriendRequestApprove inserts the friendship and deletes the request
	// in one transaction.
	FriendRequestApprove(reqId string, friendship *t.Friendship) error
	// FriendRequestDelete removes a pending request.
	FriendRequestDelete(id string) error
	// FriendshipGet fetches the friendship between two users regardless of
	// the order of the arguments.
	FriendshipGet(u1, u2 t.Uid) (*t.Friendship, error)
	// FriendshipDelete removes the friendship between two users.
	FriendshipDelete(u1, u2 t.Uid) error
	// FriendsGetAll lists the user's friends.
	FriendsGetAll(uid t.Uid) ([]t.User, error)
	// BlockCreate inserts a block and in the same transaction deletes any
	// friendship and any pending friend requests between the pair.
	BlockCreate(block *t.Block) error
	// BlockDelete removes a block.
	BlockDelete(blocker, blocked t.Uid) error
	// BlockExists reports whether a block exists between two users in either direction.
	BlockExists(u1, u2 t.Uid) (bool, error)
	// BlocksGetAll lists the users blocked by the given user.
	BlocksGetAll(blocker t.Uid) ([]t.User, error)

	// DM channels

	// DMChannelGetOrCreate returns the channel for the given pair, creating
	// the channel and both participant rows in one transaction on first
	// contact. Reports whether the channel was created by this call.
	DMChannelGetOrCreate(channel *t.DMChannel, u1, u2 t.Uid) (bool, error)
	// DMChannelGet fetches a single channel by id.
	DMChannelGet(id t.Uid) (*t.DMChannel, error)
	// DMChannelsForUser lists the user's channels with the other
	// participant's profile and the latest message, most recently
	// active channel first.
	DMChannelsForUser(uid t.Uid) ([]t.DMChannelInfo, error)
	// DMParticipantsGet returns the two participant rows of a channel.
	DMParticipantsGet(channelId t.Uid) ([]t.DMParticipant, error)

	// DM messages

	// DMMessageSave saves a new DM message and bumps the channel's update
	// timestamp in one transaction.
	DMMessageSave(msg *t.DMMessage) error
	// DMMessageGet fetches a single DM message with the sender's profile attached.
	DMMessageGet(id t.Uid) (*t.DMMessage, error)
	// DMMessageGetAll returns the channel's messages by creation time
	// ascending, with sender profiles attached.
	DMMessageGetAll(channelId t.Uid) ([]t.DMMessage, error)
	// DMMessageUpdateContent appends the current content to the edit
	// history and overwrites it with the new content in one transaction.
	DMMessageUpdateContent(id t.Uid, content string) error
	// DMMessageDelete removes a DM message.
	DMMessageDelete(id t.Uid) error
	// DMMessageEditHistory returns the DM message's edit records, most recent first.
	DMMessageEditHistory(id t.Uid) ([]t.MessageEdit, error)
}
