// Package store provides the storage facade over a registered database
// adapter: object mappers which assign ids and timestamps, and the uid
// obfuscation codec shared with the adapters.
package store

import (
	"encoding/json"
	"errors"
	"time"

	adapter "github.com/sycs/chat/server/db"
	t "github.com/sycs/chat/server/store/types"
)

var adapters = make(map[string]adapter.Adapter)

type configType struct {
	// Maximum number of records fetched by a single query, 0 for the
	// adapter's default.
	MaxResults int `json:"max_results"`
	// 16 byte XTEA key for (un)obfuscating object ids.
	UidKey []byte `json:"uid_key"`
	// Name of the adapter to use.
	UseAdapter string `json:"use_adapter"`
	// Configuration sections for individual adapters, keyed by adapter name.
	Adapters map[string]json.RawMessage `json:"adapters"`
}

// RegisterAdapter makes a database adapter available.
// If RegisterAdapter is called twice or if the adapter is nil, it panics.
func RegisterAdapter(a adapter.Adapter) {
	if a == nil {
		panic("store: register adapter is nil")
	}

	name := a.GetName()
	if _, dup := adapters[name]; dup {
		panic("store: adapter '" + name + "' is already registered")
	}
	adapters[name] = a
}

// uGen is the package-wide uid generator. Initialized once at Open; used
// by the object mappers and exposed to adapters through DecodeUid/EncodeUid.
var uGen t.UidGenerator

// GetUid generates a unique ID suitable for use as a primary key.
func GetUid() t.Uid {
	return uGen.Get()
}

// GetUidString generates a unique ID as a string.
func GetUidString() string {
	return uGen.GetStr()
}

// DecodeUid converts an obfuscated Uid to the int64 stored by SQL adapters.
func DecodeUid(uid t.Uid) int64 {
	return uGen.DecodeUid(uid)
}

// EncodeUid converts a stored int64 into an obfuscated Uid.
func EncodeUid(id int64) t.Uid {
	return uGen.EncodeInt64(id)
}

// Store is the set of persistence mappers backed by one open adapter.
// It is constructed once at startup and handed to every component which
// needs durable state.
type Store struct {
	adp adapter.Adapter

	Users    UsersPersistenceInterface
	Threads  ThreadsPersistenceInterface
	Messages MessagesPersistenceInterface
	Social   SocialPersistenceInterface
	DMs      DMsPersistenceInterface
}

// NewStore wraps an already-opened adapter. Used directly by tests;
// production code goes through Open.
func NewStore(adp adapter.Adapter) *Store {
	return &Store{
		adp:      adp,
		Users:    usersMapper{adp},
		Threads:  threadsMapper{adp},
		Messages: messagesMapper{adp},
		Social:   socialMapper{adp},
		DMs:      dmsMapper{adp},
	}
}

// Open parses the store configuration, initializes the uid generator,
// opens the selected adapter and verifies the schema version.
func Open(workerId int, jsonconf json.RawMessage) (*Store, error) {
	var config configType
	if err := json.Unmarshal(jsonconf, &config); err != nil {
		return nil, errors.New("store: failed to parse config: " + err.Error())
	}

	if config.UseAdapter == "" {
		return nil, errors.New("store: database adapter is not specified")
	}
	adp := adapters[config.UseAdapter]
	if adp == nil {
		return nil, errors.New("store: unknown adapter '" + config.UseAdapter + "'")
	}
	if adp.IsOpen() {
		return nil, errors.New("store: connection is already opened")
	}

	if err := uGen.Init(uint(workerId), config.UidKey); err != nil {
		return nil, errors.New("store: failed to init uid generator: " + err.Error())
	}

	var adapterConfig json.RawMessage
	if config.Adapters != nil {
		adapterConfig = config.Adapters[adp.GetName()]
	}
	if err := adp.Open(adapterConfig); err != nil {
		return nil, err
	}
	if config.MaxResults > 0 {
		if err := adp.SetMaxResults(config.MaxResults); err != nil {
			return nil, err
		}
	}

	if err := adp.CheckDbVersion(); err != nil {
		return nil, err
	}

	return NewStore(adp), nil
}

// OpenForInit is like Open but skips the schema version check so the
// database can be created or upgraded.
func OpenForInit(workerId int, jsonconf json.RawMessage) (*Store, error) {
	var config configType
	if err := json.Unmarshal(jsonconf, &config); err != nil {
		return nil, errors.New("store: failed to parse config: " + err.Error())
	}

	adp := adapters[config.UseAdapter]
	if adp == nil {
		return nil, errors.New("store: unknown adapter '" + config.UseAdapter + "'")
	}

	if err := uGen.Init(uint(workerId), config.UidKey); err != nil {
		return nil, err
	}

	var adapterConfig json.RawMessage
	if config.Adapters != nil {
		adapterConfig = config.Adapters[adp.GetName()]
	}
	if err := adp.Open(adapterConfig); err != nil {
		return nil, err
	}

	return NewStore(adp), nil
}

// Close terminates the connection to the persistent storage.
func (s *Store) Close() error {
	if s.adp.IsOpen() {
		return s.adp.Close()
	}
	return nil
}

// IsOpen reports if the connection to the persistent storage is ready.
func (s *Store) IsOpen() bool {
	return s.adp != nil && s.adp.IsOpen()
}

// GetAdapterName returns the name of the current adapter.
func (s *Store) GetAdapterName() string {
	return s.adp.GetName()
}

// GetAdapterVersion returns the schema version expected by the adapter.
func (s *Store) GetAdapterVersion() int {
	return s.adp.Version()
}

// GetDbVersion returns the schema version of the opened database.
func (s *Store) GetDbVersion() int {
	vers, _ := s.adp.GetDbVersion()
	return vers
}

// InitDb creates the database schema, optionally dropping an existing one.
func (s *Store) InitDb(reset bool) error {
	return s.adp.CreateDb(reset)
}

// UpgradeDb migrates the database to the adapter's version.
func (s *Store) UpgradeDb() error {
	return s.adp.UpgradeDb()
}

// DbStats returns the adapter's connection pool statistics.
func (s *Store) DbStats() interface{} {
	if s.adp == nil || !s.adp.IsOpen() {
		return nil
	}
	return s.adp.Stats()
}

// UsersPersistenceInterface is the user and credential persistence surface.
type UsersPersistenceInterface interface {
	Create(user *t.User) (*t.User, error)
	Get(uid t.Uid) (*t.User, error)
	GetAll(ids ...t.Uid) ([]t.User, error)
	Find(handleOrUsername string) (*t.User, error)
	Update(uid t.Uid, update map[string]interface{}) error
	AddAuthRecord(uid t.Uid, scheme, unique string, secret []byte, expires time.Time) error
	GetAuthRecord(scheme, unique string) (t.Uid, []byte, time.Time, error)
	UpdateAuthRecord(uid t.Uid, scheme, unique string, secret []byte, expires time.Time) error
}

type usersMapper struct {
	adp adapter.Adapter
}

// Create assigns an id and timestamps to the user then persists it.
func (m usersMapper) Create(user *t.User) (*t.User, error) {
	user.SetUid(GetUid())
	user.InitTimes()

	if err := m.adp.UserCreate(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (m usersMapper) Get(uid t.Uid) (*t.User, error) {
	return m.adp.UserGet(uid)
}

func (m usersMapper) GetAll(ids ...t.Uid) ([]t.User, error) {
	return m.adp.UserGetAll(ids...)
}

func (m usersMapper) Find(handleOrUsername string) (*t.User, error) {
	return m.adp.UserFind(handleOrUsername)
}

func (m usersMapper) Update(uid t.Uid, update map[string]interface{}) error {
	update["UpdatedAt"] = t.TimeNow()
	return m.adp.UserUpdate(uid, update)
}

func (m usersMapper) AddAuthRecord(uid t.Uid, scheme, unique string, secret []byte,
	expires time.Time) error {
	return m.adp.AuthAddRecord(uid, scheme, unique, secret, expires)
}

func (m usersMapper) GetAuthRecord(scheme, unique string) (t.Uid, []byte, time.Time, error) {
	return m.adp.AuthGetRecord(scheme, unique)
}

func (m usersMapper) UpdateAuthRecord(uid t.Uid, scheme, unique string, secret []byte,
	expires time.Time) error {
	return m.adp.AuthUpdRecord(uid, scheme, unique, secret, expires)
}

// ThreadsPersistenceInterface is the group thread persistence surface.
type ThreadsPersistenceInterface interface {
	Create(thread *t.Thread) (*t.Thread, error)
	Get(id t.Uid) (*t.Thread, error)
	GetAll() ([]t.Thread, error)
	Update(id t.Uid, update map[string]interface{}) error
	Delete(id t.Uid) error
}

type threadsMapper struct {
	adp adapter.Adapter
}

func (m threadsMapper) Create(thread *t.Thread) (*t.Thread, error) {
	thread.SetUid(GetUid())
	thread.InitTimes()

	if err := m.adp.ThreadCreate(thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (m threadsMapper) Get(id t.Uid) (*t.Thread, error) {
	return m.adp.ThreadGet(id)
}

func (m threadsMapper) GetAll() ([]t.Thread, error) {
	return m.adp.ThreadGetAll()
}

func (m threadsMapper) Update(id t.Uid, update map[string]interface{}) error {
	update["UpdatedAt"] = t.TimeNow()
	return m.adp.ThreadUpdate(id, update)
}

func (m threadsMapper) Delete(id t.Uid) error {
	return m.adp.ThreadDelete(id)
}

// MessagesPersistenceInterface is the thread message persistence surface.
type MessagesPersistenceInterface interface {
	Save(msg *t.Message) (*t.Message, error)
	Get(id t.Uid) (*t.Message, error)
	GetAll(threadId t.Uid) ([]t.Message, error)
	UpdateContent(id t.Uid, content string) error
	Pin(id t.Uid, pinned bool) error
	Delete(id t.Uid) error
	EditHistory(id t.Uid) ([]t.MessageEdit, error)
}

type messagesMapper struct {
	adp adapter.Adapter
}

func (m messagesMapper) Save(msg *t.Message) (*t.Message, error) {
	msg.SetUid(GetUid())
	msg.InitTimes()

	if err := m.adp.MessageSave(msg); err != nil {
		return nil, err
	}
	// Read back with the sender profile attached.
	return m.adp.MessageGet(msg.Uid())
}

func (m messagesMapper) Get(id t.Uid) (*t.Message, error) {
	return m.adp.MessageGet(id)
}

func (m messagesMapper) GetAll(threadId t.Uid) ([]t.Message, error) {
	return m.adp.MessageGetAll(threadId)
}

func (m messagesMapper) UpdateContent(id t.Uid, content string) error {
	return m.adp.MessageUpdateContent(id, content)
}

func (m messagesMapper) Pin(id t.Uid, pinned bool) error {
	return m.adp.MessagePin(id, pinned)
}

func (m messagesMapper) Delete(id t.Uid) error {
	return m.adp.MessageDelete(id)
}

func (m messagesMapper) EditHistory(id t.Uid) ([]t.MessageEdit, error) {
	return m.adp.MessageEditHistory(id)
}

// SocialPersistenceInterface is the friend request, friendship and block
// persistence surface.
type SocialPersistenceInterface interface {
	RequestCreate(req *t.FriendRequest) (*t.FriendRequest, error)
	RequestGet(id string) (*t.FriendRequest, error)
	RequestGetPending(u1, u2 t.Uid) (*t.FriendRequest, error)
	RequestsForUser(uid t.Uid, incoming bool) ([]t.FriendRequest, error)
	RequestApprove(req *t.FriendRequest) (*t.Friendship, error)
	RequestDelete(id string) error
	FriendshipGet(u1, u2 t.Uid) (*t.Friendship, error)
	FriendshipDelete(u1, u2 t.Uid) error
	FriendsGetAll(uid t.Uid) ([]t.User, error)
	BlockCreate(blocker, blocked t.Uid) (*t.Block, error)
	BlockDelete(blocker, blocked t.Uid) error
	BlockExists(u1, u2 t.Uid) (bool, error)
	BlocksGetAll(blocker t.Uid) ([]t.User, error)
}

type socialMapper struct {
	adp adapter.Adapter
}

func (m socialMapper) RequestCreate(req *t.FriendRequest) (*t.FriendRequest, error) {
	req.Id = GetUidString()
	req.CreatedAt = t.TimeNow()

	if err := m.adp.FriendRequestCreate(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (m socialMapper) RequestGet(id string) (*t.FriendRequest, error) {
	return m.adp.FriendRequestGet(id)
}

func (m socialMapper) RequestGetPending(u1, u2 t.Uid) (*t.FriendRequest, error) {
	return m.adp.FriendRequestGetPending(u1, u2)
}

func (m socialMapper) RequestsForUser(uid t.Uid, incoming bool) ([]t.FriendRequest, error) {
	return m.adp.FriendRequestsForUser(uid, incoming)
}

// RequestApprove converts a pending request into a friendship. The
// friendship is stored with the smaller uid first; insert and request
// removal happen in one transaction inside the adapter.
func (m socialMapper) RequestApprove(req *t.FriendRequest) (*t.Friendship, error) {
	lo, hi := t.NormalizePair(req.SenderId, req.ReceiverId)
	friendship := &t.Friendship{
		Id:        GetUidString(),
		UserLo:    lo,
		UserHi:    hi,
		CreatedAt: t.TimeNow(),
	}

	if err := m.adp.FriendRequestApprove(req.Id, friendship); err != nil {
		return nil, err
	}
	return friendship, nil
}

func (m socialMapper) RequestDelete(id string) error {
	return m.adp.FriendRequestDelete(id)
}

func (m socialMapper) FriendshipGet(u1, u2 t.Uid) (*t.Friendship, error) {
	return m.adp.FriendshipGet(u1, u2)
}

func (m socialMapper) FriendshipDelete(u1, u2 t.Uid) error {
	return m.adp.FriendshipDelete(u1, u2)
}

func (m socialMapper) FriendsGetAll(uid t.Uid) ([]t.User, error) {
	return m.adp.FriendsGetAll(uid)
}

func (m socialMapper) BlockCreate(blocker, blocked t.Uid) (*t.Block, error) {
	block := &t.Block{
		Id:        GetUidString(),
		BlockerId: blocker,
		BlockedId: blocked,
		CreatedAt: t.TimeNow(),
	}

	if err := m.adp.BlockCreate(block); err != nil {
		return nil, err
	}
	return block, nil
}

func (m socialMapper) BlockDelete(blocker, blocked t.Uid) error {
	return m.adp.BlockDelete(blocker, blocked)
}

func (m socialMapper) BlockExists(u1, u2 t.Uid) (bool, error) {
	return m.adp.BlockExists(u1, u2)
}

func (m socialMapper) BlocksGetAll(blocker t.Uid) ([]t.User, error) {
	return m.adp.BlocksGetAll(blocker)
}

// DMsPersistenceInterface is the DM channel and message persistence surface.
type DMsPersistenceInterface interface {
	ChannelGetOrCreate(u1, u2 t.Uid) (*t.DMChannel, bool, error)
	ChannelGet(id t.Uid) (*t.DMChannel, error)
	ChannelsForUser(uid t.Uid) ([]t.DMChannelInfo, error)
	ParticipantsGet(channelId t.Uid) ([]t.DMParticipant, error)
	MessageSave(msg *t.DMMessage) (*t.DMMessage, error)
	MessageGet(id t.Uid) (*t.DMMessage, error)
	MessageGetAll(channelId t.Uid) ([]t.DMMessage, error)
	MessageUpdateContent(id t.Uid, content string) error
	MessageDelete(id t.Uid) error
	MessageEditHistory(id t.Uid) ([]t.MessageEdit, error)
}

type dmsMapper struct {
	adp adapter.Adapter
}

// ChannelGetOrCreate returns the single channel for an unordered pair of
// users, creating it on first contact. The candidate id is generated
// upfront; if another call won the race the adapter returns the winner.
func (m dmsMapper) ChannelGetOrCreate(u1, u2 t.Uid) (*t.DMChannel, bool, error) {
	channel := &t.DMChannel{PairKey: u1.PairTo(u2)}
	channel.SetUid(GetUid())
	channel.InitTimes()

	created, err := m.adp.DMChannelGetOrCreate(channel, u1, u2)
	if err != nil {
		return nil, false, err
	}
	return channel, created, nil
}

func (m dmsMapper) ChannelGet(id t.Uid) (*t.DMChannel, error) {
	return m.adp.DMChannelGet(id)
}

func (m dmsMapper) ChannelsForUser(uid t.Uid) ([]t.DMChannelInfo, error) {
	return m.adp.DMChannelsForUser(uid)
}

func (m dmsMapper) ParticipantsGet(channelId t.Uid) ([]t.DMParticipant, error) {
	return m.adp.DMParticipantsGet(channelId)
}

func (m dmsMapper) MessageSave(msg *t.DMMessage) (*t.DMMessage, error) {
	msg.SetUid(GetUid())
	msg.InitTimes()

	if err := m.adp.DMMessageSave(msg); err != nil {
		return nil, err
	}
	return m.adp.DMMessageGet(msg.Uid())
}

func (m dmsMapper) MessageGet(id t.Uid) (*t.DMMessage, error) {
	return m.adp.DMMessageGet(id)
}

func (m dmsMapper) MessageGetAll(channelId t.Uid) ([]t.DMMessage, error) {
	return m.adp.DMMessageGetAll(channelId)
}

func (m dmsMapper) MessageUpdateContent(id t.Uid, content string) error {
	return m.adp.DMMessageUpdateContent(id, content)
}

func (m dmsMapper) MessageDelete(id t.Uid) error {
	return m.adp.DMMessageDelete(id)
}

func (m dmsMapper) MessageEditHistory(id t.Uid) ([]t.MessageEdit, error) {
	return m.adp.DMMessageEditHistory(id)
}
