// Package types defines the objects persisted by the chat service and the
// storage-level error taxonomy shared by all database adapters.
package types

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"
	"time"
)

// StoreError satisfies Error interface but allows constant values for
// direct comparison.
type StoreError string

// Error is required by error interface.
func (s StoreError) Error() string {
	return string(s)
}

const (
	// ErrInternal means DB or other internal failure.
	ErrInternal = StoreError("internal")
	// ErrMalformed means the input is malformed.
	ErrMalformed = StoreError("malformed")
	// ErrFailed means authentication failed (wrong login or password, etc).
	ErrFailed = StoreError("failed")
	// ErrDuplicate means the record already exists.
	ErrDuplicate = StoreError("duplicate value")
	// ErrUnsupported means an operation is not supported.
	ErrUnsupported = StoreError("unsupported")
	// ErrExpired means the secret has expired.
	ErrExpired = StoreError("expired")
	// ErrPermissionDenied means the caller has no rights for the action.
	ErrPermissionDenied = StoreError("denied")
	// ErrNotFound means the object was not found.
	ErrNotFound = StoreError("not found")
)

// Uid is a database-specific record id, suitable to be used as a primary key.
type Uid uint64

// ZeroUid is a constant representing uninitialized Uid.
const ZeroUid Uid = 0

const (
	uidBase64Unpadded = 11
	uidBase64Padded   = 12

	pairBase64Unpadded = 22
	pairBase64Padded   = 24
)

// IsZero checks if Uid is uninitialized.
func (uid Uid) IsZero() bool {
	return uid == 0
}

// Compare returns 0 if uid is equal to u2, -1 if uid is smaller than u2, 1 if greater.
func (uid Uid) Compare(u2 Uid) int {
	if uid < u2 {
		return -1
	} else if uid > u2 {
		return 1
	}
	return 0
}

// MarshalBinary converts Uid into byte slice.
func (uid Uid) MarshalBinary() ([]byte, error) {
	dst := make([]byte, 8)
	binary.LittleEndian.PutUint64(dst, uint64(uid))
	return dst, nil
}

// UnmarshalBinary reads Uid from byte slice.
func (uid *Uid) UnmarshalBinary(b []byte) error {
	if len(b) < 8 {
		return errors.New("Uid.UnmarshalBinary: invalid length")
	}
	*uid = Uid(binary.LittleEndian.Uint64(b))
	return nil
}

// UnmarshalText reads Uid from an unpadded base64url representation.
func (uid *Uid) UnmarshalText(src []byte) error {
	if len(src) != uidBase64Unpadded {
		return errors.New("Uid.UnmarshalText: invalid length")
	}
	dec := make([]byte, base64.URLEncoding.DecodedLen(uidBase64Padded))
	for len(src) < uidBase64Padded {
		src = append(src, '=')
	}
	count, err := base64.URLEncoding.Decode(dec, src)
	if count < 8 {
		if err != nil {
			return errors.New("Uid.UnmarshalText: failed to decode " + err.Error())
		}
		return errors.New("Uid.UnmarshalText: failed to decode")
	}
	*uid = Uid(binary.LittleEndian.Uint64(dec))
	return nil
}

// MarshalText converts Uid to an unpadded base64url string.
func (uid Uid) MarshalText() ([]byte, error) {
	if uid == 0 {
		return []byte{}, nil
	}
	src := make([]byte, 8)
	dst := make([]byte, base64.URLEncoding.EncodedLen(8))
	binary.LittleEndian.PutUint64(src, uint64(uid))
	base64.URLEncoding.Encode(dst, src)
	return dst[0:uidBase64Unpadded], nil
}

// MarshalJSON converts Uid to a quoted string.
func (uid Uid) MarshalJSON() ([]byte, error) {
	dst, _ := uid.MarshalText()
	return append(append([]byte{'"'}, dst...), '"'), nil
}

// UnmarshalJSON reads Uid from a quoted string.
func (uid *Uid) UnmarshalJSON(b []byte) error {
	size := len(b)
	if size != (uidBase64Unpadded + 2) {
		return errors.New("Uid.UnmarshalJSON: invalid length")
	} else if b[0] != '"' || b[size-1] != '"' {
		return errors.New("Uid.UnmarshalJSON: unrecognized")
	}
	return uid.UnmarshalText(b[1 : size-1])
}

// String converts Uid to its base64url string representation.
func (uid Uid) String() string {
	buf, _ := uid.MarshalText()
	return string(buf)
}

// ParseUid parses a string into a Uid. Returns ZeroUid on failure.
func ParseUid(s string) Uid {
	var uid Uid
	uid.UnmarshalText([]byte(s))
	return uid
}

// PairTo generates a canonical unordered-pair key for uid and u2. The key
// does not depend on the order of the arguments. Returns an empty string
// if either uid is zero or both are the same.
func (uid Uid) PairTo(u2 Uid) string {
	if uid.IsZero() || u2.IsZero() {
		return ""
	}

	b1, _ := uid.MarshalBinary()
	b2, _ := u2.MarshalBinary()

	if uid < u2 {
		b1 = append(b1, b2...)
	} else if uid > u2 {
		b1 = append(b2, b1...)
	} else {
		// No pair with self.
		return ""
	}

	return "dm" + base64.URLEncoding.EncodeToString(b1)[:pairBase64Unpadded]
}

// ParsePair extracts the two uids from a canonical pair key.
func ParsePair(pair string) (uid1, uid2 Uid, err error) {
	if !strings.HasPrefix(pair, "dm") {
		err = errors.New("ParsePair: missing or invalid prefix")
		return
	}
	src := []byte(pair)[2:]
	if len(src) != pairBase64Unpadded {
		err = errors.New("ParsePair: invalid length")
		return
	}
	dec := make([]byte, base64.URLEncoding.DecodedLen(pairBase64Padded))
	for len(src) < pairBase64Padded {
		src = append(src, '=')
	}
	var count int
	count, err = base64.URLEncoding.Decode(dec, src)
	if count < 16 {
		if err != nil {
			err = errors.New("ParsePair: failed to decode " + err.Error())
			return
		}
		err = errors.New("ParsePair: invalid decoded length")
		return
	}
	uid1 = Uid(binary.LittleEndian.Uint64(dec))
	uid2 = Uid(binary.LittleEndian.Uint64(dec[8:]))
	return
}

// NormalizePair orders two uids so the smaller one comes first.
func NormalizePair(a, b Uid) (Uid, Uid) {
	if a > b {
		return b, a
	}
	return a, b
}

// TimeNow returns current wall time in UTC rounded to milliseconds.
func TimeNow() time.Time {
	return time.Now().UTC().Round(time.Millisecond)
}

// ObjHeader is the header shared by all stored objects.
type ObjHeader struct {
	// Id is the string representation of the object's uid. Kept as a string
	// so adapters with different native key types can share one shape.
	Id        string
	id        Uid
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Uid returns the internal numeric Uid, decoding Id if necessary.
func (h *ObjHeader) Uid() Uid {
	if h.id.IsZero() && h.Id != "" {
		h.id.UnmarshalText([]byte(h.Id))
	}
	return h.id
}

// SetUid assigns the given Uid to the object.
func (h *ObjHeader) SetUid(uid Uid) {
	h.id = uid
	h.Id = uid.String()
}

// InitTimes initializes time.Time variables in the header to current time.
func (h *ObjHeader) InitTimes() {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = TimeNow()
	}
	h.UpdatedAt = h.CreatedAt
}

// MergeTimes intelligently copies time values from h2 to h.
func (h *ObjHeader) MergeTimes(h2 *ObjHeader) {
	if h.CreatedAt.IsZero() || (!h2.CreatedAt.IsZero() && h2.CreatedAt.Before(h.CreatedAt)) {
		h.CreatedAt = h2.CreatedAt
	}
	if h.UpdatedAt.Before(h2.UpdatedAt) {
		h.UpdatedAt = h2.UpdatedAt
	}
}

// User is a stored service account.
type User struct {
	ObjHeader

	// Short public handle, unique, assigned once at creation.
	Handle string
	// Unique login name.
	Username string
	// Unique email address.
	Email string

	// Public profile: display name and similar owner-mutable fields,
	// visible to everyone.
	Public interface{}
	// Owner-only presentation settings (colors, avatar decoration, etc).
	Decoration interface{}
}

// Profile is a read-time snapshot of a user's public fields attached to
// messages and channel listings.
type Profile struct {
	Id       string      `json:"id"`
	Handle   string      `json:"handle"`
	Username string      `json:"username"`
	Public   interface{} `json:"public,omitempty"`
}

// Profile returns the user's public snapshot.
func (u *User) Profile() *Profile {
	return &Profile{
		Id:       u.Uid().String(),
		Handle:   u.Handle,
		Username: u.Username,
		Public:   u.Public,
	}
}

// ThreadVisibility is who can discover and read a thread.
type ThreadVisibility string

const (
	// VisibilityPublic threads are listed and readable by anyone.
	VisibilityPublic = ThreadVisibility("public")
	// VisibilityPrivate threads are hidden from the public listing.
	VisibilityPrivate = ThreadVisibility("private")
	// VisibilityInvite threads are joinable by invitation only.
	VisibilityInvite = ThreadVisibility("invite")
)

// ThreadFlags are per-thread policy switches, mutable by the creator only.
type ThreadFlags struct {
	SpamCheck        bool `json:"spam_check"`
	ModEnabled       bool `json:"mod_enabled"`
	AllowMsgDelete   bool `json:"allow_msg_delete"`
	AllowAttachments bool `json:"allow_attachments"`
}

// Thread is a group conversation.
type Thread struct {
	ObjHeader

	Title      string
	CreatorId  Uid
	Visibility ThreadVisibility
	Flags      ThreadFlags
}

// Attachment is an opaque reference to an uploaded file. Validity of the
// URL is the uploader's concern, not the message store's.
type Attachment struct {
	Url  string `json:"url"`
	Name string `json:"name"`
}

// Message is a thread-scoped chat message.
type Message struct {
	ObjHeader

	ThreadId Uid
	SenderId Uid
	Content  string
	// ParentId is a weak reference to another message in the same thread.
	// It may dangle after the parent is deleted.
	ParentId   Uid
	Pinned     bool
	Attachment *Attachment

	// Sender profile snapshot, populated on reads only.
	Sender *Profile
}

// MessageEdit is an append-only record of a message's content before an edit.
type MessageEdit struct {
	Id        string
	MessageId Uid
	Content   string
	CreatedAt time.Time
}

// FriendRequest is a directed pending edge from sender to receiver.
type FriendRequest struct {
	Id         string
	SenderId   Uid
	ReceiverId Uid
	CreatedAt  time.Time

	// Counterparty profiles, populated on reads.
	Sender   *Profile
	Receiver *Profile
}

// Friendship is an undirected edge stored with the smaller uid first.
type Friendship struct {
	Id        string
	UserLo    Uid
	UserHi    Uid
	CreatedAt time.Time
}

// OtherUser returns the uid of the friend who is not `me`.
func (f *Friendship) OtherUser(me Uid) Uid {
	if f.UserLo == me {
		return f.UserHi
	}
	return f.UserLo
}

// Block is a directed edge from blocker to blocked.
type Block struct {
	Id        string
	BlockerId Uid
	BlockedId Uid
	CreatedAt time.Time
}

// DMChannel is a private two-party conversation container. UpdatedAt is
// bumped on every message posted to the channel.
type DMChannel struct {
	ObjHeader

	// PairKey is the canonical unordered-pair key of the two participants.
	// Unique: it is what makes channel creation idempotent.
	PairKey string
}

// DMParticipant is a channel membership row. Exactly two exist per channel,
// written at creation and never changed.
type DMParticipant struct {
	ChannelId Uid
	UserId    Uid
}

// DMMessage is a message scoped to a DM channel. Same shape as Message
// minus the pinned flag.
type DMMessage struct {
	ObjHeader

	ChannelId  Uid
	SenderId   Uid
	Content    string
	ParentId   Uid
	Attachment *Attachment

	Sender *Profile
}

// DMChannelInfo is a listing row: the channel plus the other participant
// and the latest message, if any.
type DMChannelInfo struct {
	Channel     DMChannel
	Other       *Profile
	LastContent string
	LastSentAt  *time.Time
}
